package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
)

var errNotPositive = errors.New("must be a positive integer")

// options holds the parsed command line.
type options struct {
	width    int
	height   int
	cellSize int
	seed     int64
	steps    bool
}

func parseOptions(args []string, defaults config.Config, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("vinom-maze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.width, "width", defaults.MazeWidth, "maze width in cells")
	fs.IntVar(&opts.height, "height", defaults.MazeHeight, "maze height in cells")
	fs.IntVar(&opts.cellSize, "cell-size", defaults.CellSize, "horizontal repeat of each printed tile")
	fs.Int64Var(&opts.seed, "seed", defaults.Seed, "random seed (0 picks one from the clock)")
	fs.BoolVar(&opts.steps, "steps", false, "log every generator step at debug level")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	for _, v := range []struct {
		name  string
		value int
	}{{"width", opts.width}, {"height", opts.height}, {"cell-size", opts.cellSize}} {
		if v.value <= 0 {
			return options{}, fmt.Errorf("-%s %w, got %d", v.name, errNotPositive, v.value)
		}
	}

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, config.Envs, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	level := config.Envs.LogLevel
	if opts.steps {
		level = "debug"
	}
	appLogger, err := logger.New("MAZE", config.ColorCyan, stderr,
		logger.WithLevel(level),
		logger.WithTimestamp(config.Envs.LogTimestamp),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: creating logger: %v\n", err)
		return 1
	}

	cfg := service.Config{Logger: appLogger}
	if opts.steps {
		genLogger, err := logger.New("GENERATOR", config.ColorMagenta, stderr,
			logger.WithLevel("debug"),
			logger.WithTimestamp(config.Envs.LogTimestamp),
		)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating generator logger: %v", err))
			return 1
		}
		stepLogger := genLogger.WithField("seed", opts.seed)
		cfg.OnStep = func(s maze.Step) {
			stepLogger.Debug(fmt.Sprintf("%s %v -> %v", s.Kind, s.From, s.To))
		}
	}

	svc, err := service.NewMazeService(cfg)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		return 1
	}

	result, err := svc.Run(opts.width, opts.height, opts.seed)
	if err != nil {
		return 1
	}

	fmt.Fprint(stdout, result.Render(opts.cellSize))
	if result.Result.Found() {
		fmt.Fprintf(stdout, "seed=%d start=%v end=%v tiles=%d cells=%d\n",
			result.Seed, result.Entrances.Start, result.Entrances.End,
			len(result.Result.Path), len(result.Result.Path.Cells()))
	} else {
		fmt.Fprintf(stdout, "seed=%d start=%v end=%v no path\n",
			result.Seed, result.Entrances.Start, result.Entrances.End)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
