package engine

import (
	"fmt"
	"math/rand"
)

// PieceProvider supplies the next piece kind for a game. Providers are owned
// by a single game and are not safe for concurrent use.
type PieceProvider interface {
	Next() Kind
}

// ProviderKind selects a PieceProvider implementation.
type ProviderKind uint8

const (
	ProviderBag ProviderKind = 0
	ProviderLCG ProviderKind = 1
)

func (p ProviderKind) String() string {
	switch p {
	case ProviderBag:
		return "bag"
	case ProviderLCG:
		return "lcg"
	default:
		return fmt.Sprintf("provider(%d)", uint8(p))
	}
}

// NewProvider builds a provider of the given kind. LCG providers use the low
// 32 bits of seed.
func NewProvider(kind ProviderKind, seed uint64) (PieceProvider, error) {
	switch kind {
	case ProviderBag:
		return NewBagProvider(int64(seed)), nil
	case ProviderLCG:
		return NewLCGProvider(uint32(seed)), nil
	default:
		return nil, fmt.Errorf("unknown provider kind %d", kind)
	}
}

// bagCopies is how many copies of each kind go into one pool.
const bagCopies = 7

// BagProvider shuffles 7 copies of every kind into a single 49-entry pool
// and pops from it until empty. Each kind appears exactly 7 times per 49
// draws, but because the whole pool is shuffled at once there is no bound
// on the gap between two appearances of the same kind inside a cycle.
type BagProvider struct {
	pool []Kind
	rng  *rand.Rand
}

// NewBagProvider creates a bag provider seeded with seed.
func NewBagProvider(seed int64) *BagProvider {
	return &BagProvider{
		pool: make([]Kind, 0, bagCopies*NumKinds),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Next pops the next kind, refilling the pool first if it is empty.
func (b *BagProvider) Next() Kind {
	if len(b.pool) == 0 {
		b.refill()
	}
	k := b.pool[len(b.pool)-1]
	b.pool = b.pool[:len(b.pool)-1]
	return k
}

func (b *BagProvider) refill() {
	b.pool = b.pool[:0]
	for i := 0; i < bagCopies*NumKinds; i++ {
		b.pool = append(b.pool, Kind(i%NumKinds))
	}
	b.rng.Shuffle(len(b.pool), func(i, j int) {
		b.pool[i], b.pool[j] = b.pool[j], b.pool[i]
	})
}

// glibc rand() constants.
const (
	lcgA = 1103515245
	lcgC = 12345
)

// LCGProvider is a deterministic linear congruential generator. The same
// seed always yields the same piece sequence.
type LCGProvider struct {
	state uint32
}

// NewLCGProvider creates an LCG provider with the given initial state.
func NewLCGProvider(seed uint32) *LCGProvider {
	return &LCGProvider{state: seed}
}

// Next advances the state (mod 2^32) and maps bits 16-30 onto a kind.
func (l *LCGProvider) Next() Kind {
	l.state = lcgA*l.state + lcgC
	return Kind(((l.state >> 16) & 0x7FFF) % NumKinds)
}
