package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-listsort/chain"
	"github.com/forestrie/go-listsort/msort"
)

type config struct {
	Size  int
	Range int
	Seed  int64
}

var (
	cfg      config
	logLevel string
)

func init() {
	flag.IntVar(&cfg.Size, "size", 100, "number of values in the list")
	flag.IntVar(&cfg.Range, "range", 100, "values are drawn from [0, range]")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed, 0 seeds from the clock")
	flag.StringVar(&logLevel, "log-level", "INFO", "log level")
}

func main() {
	flag.Parse()

	logger.New(logLevel)
	log := logger.Sugar.WithServiceName("listsort")

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := run(os.Stdout, log, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "listsort: %v\n", err)
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

	a := chain.NewArena()
	head, err := chain.Build(a, values)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\noriginal array:\n")
	if err = chain.Fprint(w, a, head); err != nil {
		return err
	}

	head, err = msort.SortAll(a, head)
	if err != nil {
		// head is still ours to release
		if derr := chain.Destroy(a, head); derr != nil {
			log.Infof("release after failed sort: %v", derr)
		}
		return err
	}

	fmt.Fprintf(w, "\n\nafter sorting: \n")
	if err = chain.Fprint(w, a, head); err != nil {
		return err
	}

	if err = chain.Destroy(a, head); err != nil {
		return err
	}
	log.Debugf("allocs=%d releases=%d", a.Allocs(), a.Releases())
	fmt.Fprintf(w, "\n\n%d memory leaks\n\n", a.Live())
	return nil
}
