// Command hazardlistd spawns a fixed number of inserter and remover
// goroutines against a single hazardlist.List, joins them, then prints
// the final contents, length, a probe-key containment check, and
// whether the list is sorted.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"

	"github.com/corvyn/hazardlist"
)

func main() {
	var (
		inserters = flag.Int("inserters", 4, "number of inserter goroutines")
		removers  = flag.Int("removers", 4, "number of remover goroutines")
		ops       = flag.Int("ops", 1000, "operations per worker")
		keyRange  = flag.Int("key-range", 200, "keys are drawn from [0, key-range)")
		probeKey  = flag.Int("probe-key", 50, "key to probe for containment after the run")
		seed      = flag.Int64("seed", 0, "PRNG seed; 0 picks one based on process start")
	)
	flag.Parse()
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if *inserters+*removers > hazardlist.MaxWorkers {
		fmt.Fprintf(os.Stderr, "inserters+removers must not exceed %d\n", hazardlist.MaxWorkers)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig)))
	defer cancel()

	if err := run(ctx, *inserters, *removers, *ops, *keyRange, *probeKey, *seed); err != nil {
		logger.Get(ctx).Sugar().Errorf("run failed: %+v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, inserters, removers, ops, keyRange, probeKey int, seed int64) error {
	log := logger.Get(ctx).Sugar()
	l := hazardlist.New()

	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i := 0; i < inserters; i++ {
			workerID := i
			workerSeed := seed + int64(workerID)
			spawn(fmt.Sprintf("inserter-%02d", workerID), parallel.Continue, func(ctx context.Context) error {
				rng := rand.New(rand.NewSource(workerSeed))
				for n := 0; n < ops; n++ {
					key := rng.Intn(keyRange)
					if err := l.Insert(key, workerID); err != nil {
						return errors.Wrapf(err, "inserter %d", workerID)
					}
				}
				log.Infow("inserter done", "worker", workerID)
				return nil
			})
		}
		for i := 0; i < removers; i++ {
			workerID := inserters + i
			workerSeed := seed + 100 + int64(workerID)
			spawn(fmt.Sprintf("remover-%02d", workerID), parallel.Continue, func(ctx context.Context) error {
				rng := rand.New(rand.NewSource(workerSeed))
				for n := 0; n < ops; n++ {
					key := rng.Intn(keyRange)
					l.Remove(key, workerID)
				}
				log.Infow("remover done", "worker", workerID)
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	l.ScanAndReclaim()

	fmt.Println("Final list contents (unmarked nodes):")
	fmt.Println(l.Dump())
	fmt.Println("Length:", l.Length())

	answer := "No"
	if l.Contains(probeKey, 0) {
		answer = "Yes"
	}
	fmt.Printf("Contains %d? %s\n", probeKey, answer)

	if l.CheckSorted() {
		fmt.Println("SORTED")
	}
	stats := l.Stats()
	log.Infow("run complete",
		"insertRetries", stats.InsertRetries,
		"removeRetries", stats.RemoveRetries,
		"reclaimPasses", stats.ReclaimPasses,
		"nodesFreed", stats.NodesFreed,
	)
	return nil
}
