package main

import (
	"flag"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/lodestar-engine/lodestar/internal/config"
	"github.com/lodestar-engine/lodestar/internal/engine"
	"github.com/lodestar-engine/lodestar/internal/logging"
	"github.com/lodestar-engine/lodestar/internal/storage"
	"github.com/lodestar-engine/lodestar/internal/uci"
)

// Default NNUE file names (Stockfish compatible)
const (
	defaultBigNet   = "nn-c288c895ea92.nnue" // ~108MB
	defaultSmallNet = "nn-37f18f62d772.nnue" // ~3.5MB
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var tuningFile = flag.String("config", "", "path to a JSON search-tuning override file")

func main() {
	flag.Parse()

	if *tuningFile != "" {
		if err := config.Load(*tuningFile); err != nil {
			logging.Fatalf("could not load tuning config: %v", err)
		}
	}

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			logging.Fatalf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logging.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
		logging.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	// Create engine with 64MB hash table
	// Multi-threaded search enabled (Lazy SMP)
	eng := engine.NewEngine(64)

	// Auto-load NNUE from default locations
	if err := autoLoadNNUE(eng); err != nil {
		logging.Printf("Warning: NNUE not loaded: %v (using classical evaluation)", err)
	}

	// Create and run UCI protocol handler
	protocol := uci.New(eng)
	protocol.Run()
}

// autoLoadNNUE attempts to load NNUE weights from standard locations
func autoLoadNNUE(eng *engine.Engine) error {
	searchPaths := []string{"./nnue", "."}
	if nnueDir, err := storage.GetNNUEDir(); err == nil {
		searchPaths = append([]string{nnueDir}, searchPaths...)
	}

	for _, dir := range searchPaths {
		bigPath := filepath.Join(dir, defaultBigNet)
		smallPath := filepath.Join(dir, defaultSmallNet)

		// Check if both files exist
		if fileExists(bigPath) && fileExists(smallPath) {
			if err := eng.LoadNNUE(bigPath, smallPath); err != nil {
				logging.Printf("Failed to load NNUE from %s: %v", dir, err)
				continue
			}
			eng.SetUseNNUE(true)
			logging.Printf("NNUE loaded from %s", dir)
			return nil
		}
	}

	return os.ErrNotExist
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
