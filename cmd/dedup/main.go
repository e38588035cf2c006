package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-listsort/dlist"
)

type config struct {
	Size    int
	Range   int
	Seed    int64
	Verbose bool
}

var (
	cfg      config
	logLevel string
)

func init() {
	flag.IntVar(&cfg.Size, "size", 200, "number of values in the list")
	flag.IntVar(&cfg.Range, "range", 49, "values are drawn from [0, range]")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed, 0 seeds from the clock")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "print each node with its neighbour refs")
	flag.StringVar(&logLevel, "log-level", "INFO", "log level")
}

func main() {
	flag.Parse()

	logger.New(logLevel)
	log := logger.Sugar.WithServiceName("dedup")

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := run(os.Stdout, log, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "dedup: %v\n", err)
		logger.OnExit()
		os.Exit(1)
	}
	logger.OnExit()
}

func run(w io.Writer, log logger.Logger, cfg config) error {
	if cfg.Size < 0 || cfg.Range < 0 {
		return fmt.Errorf("size and range must not be negative: size=%d, range=%d", cfg.Size, cfg.Range)
	}
	log.Infof("size=%d range=%d seed=%d", cfg.Size, cfg.Range, cfg.Seed)

	rng := rand.New(rand.NewSource(cfg.Seed))
	values := make([]int, cfg.Size)
	for i := range values {
		values[i] = rng.Intn(cfg.Range + 1)
	}
	l := dlist.FromValues(values)

	dump := dlist.Fprint
	if cfg.Verbose {
		dump = dlist.FprintVerbose
	}

	fmt.Fprintf(w, "\nlist before deleting duplicates\n")
	if err := dump(w, l); err != nil {
		return err
	}

	removed := l.DeleteDuplicates()
	log.Infof("removed %d duplicates, %d values remain", removed, l.Len())

	fmt.Fprintf(w, "\nlist after deleting duplicates\n")
	if err := dump(w, l); err != nil {
		return err
	}

	l.Clear()
	fmt.Fprintf(w, "\nmemory leaks: %d\n\n", l.Live())
	return nil
}
