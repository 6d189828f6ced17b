// Command campusnav answers campus route queries from the command line and
// serves the navigator over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/campusnav/backend"
	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/frontend"
	"github.com/katalvlaran/campusnav/logging"
	"github.com/katalvlaran/campusnav/metrics"
	"github.com/katalvlaran/campusnav/server"
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

const usage = `campusnav - fastest walking routes across campus.

Usage:
  campusnav <command> [options]

Commands:
  serve       run the HTTP navigator
  path        print the fastest route between two locations
  longest     print the fastest route from a location that visits the most locations
  locations   list locations, optionally filtered by prefix

Run "campusnav <command> -h" for command options.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run dispatches one subcommand. It never calls os.Exit.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return &ExitError{Code: 2}
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "serve":
		return runServe(ctx, rest, stderr)
	case "path":
		return runPath(rest, stdout, stderr)
	case "longest":
		return runLongest(rest, stdout, stderr)
	case "locations":
		return runLocations(rest, stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", cmd)}
	}
}

// common holds the flags every subcommand accepts.
type common struct {
	configPath string
	dataPath   string
	logLevel   string
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *common) {
	fs := flag.NewFlagSet("campusnav "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	c := &common{}
	fs.StringVar(&c.configPath, "config", "", "Path to a YAML config file.")
	fs.StringVar(&c.dataPath, "data", "", "Path to the campus edge-list file (overrides config).")
	fs.StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config).")
	return fs, c
}

// parse parses args and reports a clean exit for -h.
func parse(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(fs.Args(), " "))}
	}
	return false, nil
}

// setup loads configuration, applies the flag overrides and builds the
// logger. Validation runs once, after every override.
func (c *common) setup(stderr io.Writer, overrides ...func(*config.Config)) (config.Config, *slog.Logger, error) {
	cfg, err := config.Read(c.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if c.dataPath != "" {
		cfg.Data.GraphFile = c.dataPath
	}
	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
	}
	for _, o := range overrides {
		o(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	return cfg, logging.NewWithWriter(stderr, cfg.Logging), nil
}

// openBackend loads the map named by cfg.
func openBackend(cfg config.Config, logger *slog.Logger, opts ...backend.Option) (*backend.Backend, error) {
	b := backend.New(append([]backend.Option{backend.WithLogger(logger)}, opts...)...)
	if err := b.LoadGraphData(cfg.Data.GraphFile); err != nil {
		return nil, err
	}
	return b, nil
}

func runServe(ctx context.Context, args []string, stderr io.Writer) error {
	fs, c := newFlagSet("serve", stderr)
	port := fs.Int("port", 0, "HTTP port (overrides config).")
	if exit, err := parse(fs, args); exit || err != nil {
		return err
	}

	cfg, logger, err := c.setup(stderr, func(cfg *config.Config) {
		if *port != 0 {
			cfg.HTTP.Port = *port
		}
	})
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	b, err := openBackend(cfg, logger, backend.WithMetrics(m))
	if err != nil {
		return err
	}

	router := server.NewRouter(logger, server.RouterDependencies{
		Locator:         b,
		Fragments:       frontend.New(b),
		Metrics:         m,
		MetricsEndpoint: cfg.HTTP.MetricsEnabled,
	})
	srv := server.New(logger, cfg.HTTP, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("stopping", "cause", context.Cause(gctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func runPath(args []string, stdout, stderr io.Writer) error {
	fs, c := newFlagSet("path", stderr)
	from := fs.String("from", "", "Start location.")
	to := fs.String("to", "", "End location.")
	html := fs.Bool("html", false, "Print the HTML response fragment instead of text.")
	if exit, err := parse(fs, args); exit || err != nil {
		return err
	}
	if *from == "" || *to == "" {
		return &ExitError{Code: 2, Message: "path: -from and -to are required"}
	}

	cfg, logger, err := c.setup(stderr)
	if err != nil {
		return err
	}
	b, err := openBackend(cfg, logger)
	if err != nil {
		return err
	}

	if *html {
		fmt.Fprintln(stdout, frontend.New(b).ShortestPathResponseHTML(*from, *to))
		return nil
	}

	p, err := b.ShortestPath(*from, *to)
	if err != nil {
		return err
	}
	printList(stdout, p.Nodes)
	fmt.Fprintf(stdout, "Total time: %s seconds\n", strconv.FormatFloat(p.Cost, 'f', 1, 64))
	return nil
}

func runLongest(args []string, stdout, stderr io.Writer) error {
	fs, c := newFlagSet("longest", stderr)
	from := fs.String("from", "", "Start location.")
	html := fs.Bool("html", false, "Print the HTML response fragment instead of text.")
	if exit, err := parse(fs, args); exit || err != nil {
		return err
	}
	if *from == "" {
		return &ExitError{Code: 2, Message: "longest: -from is required"}
	}

	cfg, logger, err := c.setup(stderr)
	if err != nil {
		return err
	}
	b, err := openBackend(cfg, logger)
	if err != nil {
		return err
	}

	if *html {
		fmt.Fprintln(stdout, frontend.New(b).LongestLocationListFromResponseHTML(*from))
		return nil
	}

	locs, err := b.LongestLocationListFrom(*from)
	if err != nil {
		return err
	}
	printList(stdout, locs)
	fmt.Fprintf(stdout, "Locations: %d\n", len(locs))
	return nil
}

func runLocations(args []string, stdout, stderr io.Writer) error {
	fs, c := newFlagSet("locations", stderr)
	prefix := fs.String("prefix", "", "Only list locations starting with this prefix.")
	limit := fs.Int("limit", 0, "Maximum number of locations; 0 lists all.")
	if exit, err := parse(fs, args); exit || err != nil {
		return err
	}

	cfg, logger, err := c.setup(stderr)
	if err != nil {
		return err
	}
	b, err := openBackend(cfg, logger)
	if err != nil {
		return err
	}

	for _, name := range b.Suggest(*prefix, *limit) {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

func printList(w io.Writer, names []string) {
	for i, name := range names {
		fmt.Fprintf(w, "%d. %s\n", i+1, name)
	}
}
