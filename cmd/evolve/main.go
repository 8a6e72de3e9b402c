// Package main provides the tetris-evolve CLI for evolving placement weights
// and replaying the reproducible benchmark game.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/signalnine/tetrisevolve/gosim/engine"
	"github.com/signalnine/tetrisevolve/gosim/evolution"
	"github.com/signalnine/tetrisevolve/gosim/simulation"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// CLI flags
var (
	generations    int
	populationSize int
	gamesPerEval   int
	seed           int64
	workers        int
	configPath     string
	verify         bool
	limit          uint64
	verbose        bool
	profileMode    string
	showVersion    bool
)

func init() {
	flag.IntVar(&generations, "generations", 100, "Number of generations to evolve")
	flag.IntVar(&populationSize, "population-size", 128, "Population size")
	flag.IntVar(&gamesPerEval, "games-per-eval", 3, "Number of games per fitness evaluation")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = random; -verify uses 12345)")
	flag.IntVar(&workers, "workers", 0, "Number of worker goroutines (0 = auto-detect CPU count)")
	flag.StringVar(&configPath, "config", "", "YAML file with evolution settings; flags override it")
	flag.BoolVar(&verify, "verify", false, "Play the reproducible LCG benchmark game and exit")
	flag.Uint64Var(&limit, "limit", simulation.BenchmarkLimit, "Piece limit for -verify")
	flag.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flag.StringVar(&profileMode, "profile", "", "Write a profile: cpu, mem or trace")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if showVersion {
		fmt.Printf("tetris-evolve %s (built %s)\n", Version, BuildTime)
		return 0
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if profileMode != "" {
		stopper, err := startProfile(profileMode)
		if err != nil {
			log.Error().Err(err).Msg("bad -profile")
			return 2
		}
		defer stopper.Stop()
	}

	var err error
	if verify {
		err = runVerify()
	} else {
		err = runTrain()
	}
	if err != nil {
		log.Error().Err(err).Msg("failed")
		return 1
	}
	return 0
}

func startProfile(mode string) (interface{ Stop() }, error) {
	opts := []func(*profile.Profile){profile.ProfilePath("."), profile.NoShutdownHook}
	switch strings.ToLower(mode) {
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfile)
	case "trace":
		opts = append(opts, profile.TraceProfile)
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
	return profile.Start(opts...), nil
}

func runVerify() error {
	benchSeed := simulation.BenchmarkSeed
	if seed != 0 {
		benchSeed = uint32(seed)
	}

	log.Info().Uint32("seed", benchSeed).Uint64("limit", limit).Msg("running benchmark game")
	result, err := simulation.RunBenchmark(simulation.BenchmarkWeights, benchSeed, limit)
	if err != nil {
		return err
	}

	took := time.Duration(result.DurationNs)
	fmt.Printf("Lines cleared: %s\n", humanize.Comma(int64(result.LinesCleared)))
	fmt.Printf("Pieces played: %s\n", humanize.Comma(int64(result.PiecesPlayed)))
	fmt.Printf("Time:          %s\n", formatDuration(took))
	if took > 0 {
		rate := float64(result.PiecesPlayed) / took.Seconds()
		fmt.Printf("Pieces/sec:    %s\n", humanize.Commaf(float64(int64(rate))))
	}
	return nil
}

// loadConfig starts from the defaults, applies the YAML file if one is
// given, then applies any flag set explicitly on the command line.
func loadConfig() (*evolution.EvolutionConfig, error) {
	config := evolution.DefaultConfig()
	config.PopulationSize = populationSize
	config.MaxGenerations = generations
	config.GamesPerEval = gamesPerEval

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configPath, err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "generations":
			config.MaxGenerations = generations
		case "population-size":
			config.PopulationSize = populationSize
		case "games-per-eval":
			config.GamesPerEval = gamesPerEval
		case "seed":
			config.RandomSeed = seed
		case "workers":
			config.NumWorkers = workers
		}
	})

	return config, config.Validate()
}

func runTrain() error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := evolution.NewEvolutionEngine(config)
	printBanner(e)

	startTime := time.Now()
	e.OnGenerationComplete = func(stats evolution.GenerationStats) {
		progress := float64(stats.Generation+1) / float64(config.MaxGenerations) * 100
		fmt.Printf("Gen %3d/%d | Best: %s | Avg: %.2f | Div: %.4f | %s (%.0f%%)\n",
			stats.Generation+1, config.MaxGenerations,
			humanize.Commaf(stats.BestFitness), stats.AvgFitness, stats.Diversity,
			formatDuration(time.Since(startTime)), progress)
	}

	if err := e.Evolve(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nInterrupted.")
			printSummary(e, time.Since(startTime))
		}
		return err
	}

	printSummary(e, time.Since(startTime))
	return nil
}

func printBanner(e *evolution.EvolutionEngine) {
	fmt.Println()
	fmt.Println("╔════════════════════════════════════════════════════════════╗")
	fmt.Println("║              Tetris Weight Evolution (Go)                  ║")
	fmt.Println("╚════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Run:            %s\n", e.RunID)
	fmt.Printf("  Population:     %d\n", e.Config.PopulationSize)
	fmt.Printf("  Generations:    %d\n", e.Config.MaxGenerations)
	fmt.Printf("  Games/Eval:     %d\n", e.Config.GamesPerEval)
	fmt.Printf("  Game Limit:     %s pieces\n", humanize.Comma(int64(e.Config.GameLimit)))
	fmt.Printf("  Board:          %dx%d\n", e.Config.BoardWidth, e.Config.BoardHeight)
	fmt.Printf("  Workers:        %d\n", e.Evaluator.NumWorkers)
	fmt.Printf("  Seed:           %d\n", e.Seed)
	fmt.Println()
}

func printSummary(e *evolution.EvolutionEngine, totalTime time.Duration) {
	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("                      EVOLUTION SUMMARY")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("  Total Time:      %s\n", formatDuration(totalTime))
	fmt.Printf("  Generations:     %d\n", len(e.StatsHistory))

	if e.BestEver != nil {
		fmt.Printf("  Best Fitness:    %s lines\n", humanize.Commaf(e.BestEver.Fitness))
	}
	if e.FinalBest != nil {
		fmt.Printf("  Final Fitness:   %s lines\n", humanize.Commaf(e.FinalBest.Fitness))
		fmt.Printf("  Final Weights:\n")
		for i, w := range e.FinalBest.Weights {
			fmt.Printf("    %-16s %+.6f\n", featureNames[i], w)
		}
	}

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
}

var featureNames = [engine.NumFeatures]string{
	engine.FeatureLandingHeight:     "landing height",
	engine.FeatureRowsCleared:       "rows cleared",
	engine.FeatureRowTransitions:    "row transitions",
	engine.FeatureColumnTransitions: "col transitions",
	engine.FeatureHoles:             "holes",
	engine.FeatureWellSums:          "well sums",
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
