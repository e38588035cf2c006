package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-listsort/rational"
)

var logLevel string

func init() {
	flag.StringVar(&logLevel, "log-level", "INFO", "log level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <file>\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger.New(logLevel)
	log := logger.Sugar.WithServiceName("rationals")

	if err := run(os.Stdout, log, rational.OSOpener{}, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "rationals: %v\n", err)
		logger.OnExit()
		os.Exit(1)
	}
	logger.OnExit()
}

func run(w io.Writer, log logger.Logger, opener rational.Opener, name string) error {
	values, err := rational.ReadFile(opener, name)
	if err != nil {
		return err
	}
	log.Infof("read %d rationals from %s", len(values), name)

	fmt.Fprintf(w, "\nfile: %s\n\nrationals:\n", name)
	if err = rational.Fprint(w, values); err != nil {
		return err
	}

	sum, err := rational.Sum(values)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nsum:\n%s\n", sum)

	if len(values) == 0 {
		return nil
	}
	avg, err := rational.Average(values)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\naverage:\n%s\n\n", avg)
	return nil
}
