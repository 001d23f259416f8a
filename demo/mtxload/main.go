package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	MM "github.com/intel/forMatrixMarketGo"
	"github.com/intel/forMatrixMarketGo/input"
	"github.com/intel/forMatrixMarketGo/matrix"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func main() {
	app := &cli.App{
		Name:      "mtxload",
		Usage:     "load Matrix Market files and summarize their contents",
		ArgsUsage: "file...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML options file; flags override its settings"},
			&cli.BoolFlag{Name: "row", Value: true, Usage: "row-based storage (false: column-based)"},
			&cli.IntFlag{Name: "buffer-size", Value: input.DefaultBufferSize, Usage: "read buffer size in bytes"},
			&cli.BoolFlag{Name: "parallel", Usage: "read and parse on separate goroutines"},
			&cli.StringFlag{Name: "compression", Value: "auto", Usage: "none, gzip, zlib, lz4 or auto"},
			&cli.StringFlag{Name: "value", Value: "auto", Usage: "value type, e.g. int32 or float64"},
			&cli.StringFlag{Name: "index", Value: "auto", Usage: "index type, e.g. uint16"},
			&cli.BoolFlag{Name: "strict", Usage: "reject values and indices that do not fit the chosen types"},
			&cli.BoolFlag{Name: "graphblas", Usage: "also build a GraphBLAS matrix from each file"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "cpuprofile", Usage: "optional output file for a cpu profile"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func options(c *cli.Context) (opts MM.Options, err error) {
	opts = MM.DefaultOptions()
	opts.Compression = input.Auto
	if path := c.String("config"); path != "" {
		if opts, err = MM.LoadOptions(path); err != nil {
			return
		}
	}
	if c.IsSet("row") || c.String("config") == "" {
		opts.Row = c.Bool("row")
	}
	if c.IsSet("buffer-size") {
		opts.BufferSize = c.Int("buffer-size")
	}
	if c.IsSet("parallel") {
		opts.Parallel = c.Bool("parallel")
	}
	if c.IsSet("strict") {
		opts.Strict = c.Bool("strict")
	}
	if c.IsSet("compression") || c.String("config") == "" {
		if err = opts.Compression.UnmarshalText([]byte(c.String("compression"))); err != nil {
			return
		}
	}
	if c.IsSet("value") {
		if err = opts.Value.UnmarshalText([]byte(c.String("value"))); err != nil {
			return
		}
	}
	if c.IsSet("index") {
		if err = opts.Index.UnmarshalText([]byte(c.String("index"))); err != nil {
			return
		}
	}
	return
}

func newLogger(level string) (*zap.Logger, error) {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(l)
	return cfg.Build()
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("missing input file")
	}
	logger, err := newLogger(c.String("log-level"))
	if err != nil {
		return err
	}
	defer logger.Sync()
	opts, err := options(c)
	if err != nil {
		return err
	}
	opts.Logger = logger

	if cpuprofile := c.String("cpuprofile"); cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err = pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	paths := c.Args().Slice()
	problems := make([]*MM.Problem[float64], len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			p, err := MM.ReadProblem[float64](path, opts)
			if err != nil {
				return err
			}
			if c.Bool("graphblas") {
				A, err := matrix.ToGraphBLAS(p.Matrix)
				if err != nil {
					return fmt.Errorf("%v: %w", path, err)
				}
				nvals, err := A.NVals()
				if err != nil {
					return fmt.Errorf("%v: %w", path, err)
				}
				logger.Info("GraphBLAS matrix", zap.String("path", path), zap.Int("nvals", nvals))
			}
			problems[i] = p
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}
	for _, p := range problems {
		m := p.Matrix
		kind := "dense"
		if m.Sparse() {
			kind = "sparse"
		}
		orientation := "columns"
		if m.PreferRows() {
			orientation = "rows"
		}
		fmt.Printf("%v: %v x %v %v by %v, %v stored, sum %v, loaded in %v\n",
			p.Path, m.NRow(), m.NCol(), kind, orientation, p.Stored, p.Sum, p.Elapsed)
	}
	return nil
}
