package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagProviderCycleCounts(t *testing.T) {
	for _, seed := range []int64{1, 42, 12345} {
		b := NewBagProvider(seed)
		for cycle := 0; cycle < 3; cycle++ {
			var counts [NumKinds]int
			for i := 0; i < 49; i++ {
				counts[b.Next()]++
			}
			for k, c := range counts {
				assert.Equal(t, 7, c, "seed %d cycle %d kind %d", seed, cycle, k)
			}
		}
	}
}

func TestBagProviderSeeded(t *testing.T) {
	a := NewBagProvider(7)
	b := NewBagProvider(7)
	for i := 0; i < 200; i++ {
		require.Equal(t, a.Next(), b.Next(), "draw %d", i)
	}
}

func TestLCGProviderReproducible(t *testing.T) {
	a := NewLCGProvider(12345)
	b := NewLCGProvider(12345)
	for i := 0; i < 10000; i++ {
		ka, kb := a.Next(), b.Next()
		require.Equal(t, ka, kb, "draw %d", i)
		require.Less(t, int(ka), NumKinds)
	}
}

func TestLCGProviderSeedChangesSequence(t *testing.T) {
	a := NewLCGProvider(12345)
	b := NewLCGProvider(54321)
	same := true
	for i := 0; i < 1000; i++ {
		if a.Next() != b.Next() {
			same = false
		}
	}
	assert.False(t, same)
}

func TestLCGProviderFirstDraw(t *testing.T) {
	// state = 1103515245*12345 + 12345 mod 2^32 = 3554416254
	l := NewLCGProvider(12345)
	assert.Equal(t, KindS, l.Next())
	assert.Equal(t, uint32(3554416254), l.state)
}

func TestLCGProviderWraps(t *testing.T) {
	l := NewLCGProvider(math.MaxUint32)
	assert.NotPanics(t, func() {
		for i := 0; i < 100; i++ {
			l.Next()
		}
	})
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(ProviderBag, 3)
	require.NoError(t, err)
	assert.IsType(t, &BagProvider{}, p)

	p, err = NewProvider(ProviderLCG, 3)
	require.NoError(t, err)
	assert.IsType(t, &LCGProvider{}, p)

	_, err = NewProvider(ProviderKind(9), 3)
	assert.Error(t, err)
}
