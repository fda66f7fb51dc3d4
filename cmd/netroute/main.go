// Command netroute compares the array and heap Dijkstra variants on a
// network, generates random networks, and serves shortest-path queries.
//
// Usage:
//
//	netroute compare (-network FILE | -random N [-seed S] [-degree D]) -src A -dst B
//	netroute gen -random N [-seed S] [-degree D] [-extent E] [-o FILE]
//	netroute serve -config FILE
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/netroute/config"
	"github.com/katalvlaran/netroute/dijkstra"
	"github.com/katalvlaran/netroute/internal/api"
	"github.com/katalvlaran/netroute/metrics"
	"github.com/katalvlaran/netroute/network"
	"github.com/katalvlaran/netroute/pq"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "compare":
		err = runCompare(args, os.Stdout)
	case "gen":
		err = runGen(args, os.Stdout)
	case "serve":
		err = runServe(args)
	case "-h", "-help", "--help", "help":
		usage(os.Stdout)
		return
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		slog.Error(os.Args[1]+" failed", "err", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `usage:
  netroute compare (-network FILE | -random N [-seed S] [-degree D]) -src A -dst B
  netroute gen -random N [-seed S] [-degree D] [-extent E] [-o FILE]
  netroute serve -config FILE`)
}

// networkFlags are shared by compare and gen.
type networkFlags struct {
	file   string
	random int
	seed   int64
	degree int
	extent float64
}

func (nf *networkFlags) register(fs *flag.FlagSet, withFile bool) {
	if withFile {
		fs.StringVar(&nf.file, "network", "", "YAML network file")
	}
	fs.IntVar(&nf.random, "random", 0, "generate a random network with this many nodes")
	fs.Int64Var(&nf.seed, "seed", 1, "random network seed")
	fs.IntVar(&nf.degree, "degree", network.DefaultDegree, "random network out-degree")
	fs.Float64Var(&nf.extent, "extent", network.DefaultExtent, "random network square side")
}

func (nf *networkFlags) build() (*network.Network, error) {
	switch {
	case nf.file != "" && nf.random > 0:
		return nil, errors.New("-network and -random are mutually exclusive")
	case nf.file != "":
		return network.LoadFile(nf.file)
	case nf.random > 0:
		if nf.degree < 0 || !(nf.extent > 0) {
			return nil, fmt.Errorf("invalid -degree %d or -extent %g", nf.degree, nf.extent)
		}
		return network.Random(nf.random,
			network.WithSeed(nf.seed),
			network.WithDegree(nf.degree),
			network.WithExtent(nf.extent),
		)
	default:
		return nil, errors.New("one of -network or -random is required")
	}
}

// runCompare computes one query with every queue variant, prints the path
// and timings, and fails if the variants disagree.
func runCompare(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	var nf networkFlags
	nf.register(fs, true)
	src := fs.Int("src", 0, "source node id")
	dst := fs.Int("dst", 0, "destination node id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	net, err := nf.build()
	if err != nil {
		return err
	}
	slog.Info("network ready", "nodes", net.Len(), "edges", net.EdgeCount())

	solver := dijkstra.NewSolver()
	if err = solver.InitializeNetwork(net); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "variant\tcost\thops\textracted\telapsed")
	var paths []dijkstra.Path
	for _, v := range pq.Variants {
		elapsed, err := solver.ComputeShortestPaths(*src, v)
		if err != nil {
			return fmt.Errorf("%s: %w", v, err)
		}
		p, err := solver.ShortestPath(*dst)
		if err != nil {
			return fmt.Errorf("%s: %w", v, err)
		}
		paths = append(paths, p)
		fmt.Fprintf(tw, "%s\t%g\t%d\t%d\t%s\n", v, p.Cost, len(p.Hops), solver.Latest().Stats().Extracted, elapsed)
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	for _, h := range paths[len(paths)-1].Hops {
		fmt.Fprintf(out, "  %d (%.1f,%.1f) -> %d (%.1f,%.1f)  %s\n",
			h.FromID, h.From.X, h.From.Y, h.ToID, h.To.X, h.To.Y, h.Label())
	}

	for _, p := range paths[1:] {
		if p.Cost != paths[0].Cost {
			return fmt.Errorf("variants disagree: %g vs %g", paths[0].Cost, p.Cost)
		}
	}

	return nil
}

// runGen writes a random network as YAML.
func runGen(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	var nf networkFlags
	nf.register(fs, false)
	outPath := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	net, err := nf.build()
	if err != nil {
		return err
	}

	w := stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err = network.Encode(w, net); err != nil {
		return err
	}
	slog.Info("network written", "nodes", net.Len(), "edges", net.EdgeCount(), "out", *outPath)

	return nil
}

// runServe loads the config, serves the HTTP API and hot-reloads the
// network until SIGINT/SIGTERM.
func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	cfgPath := fs.String("config", "configs/netroute.yaml", "path to YAML config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// ── Load config and network ───────────────────────────────────────────────
	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		return err
	}
	cfg := loader.Config()

	net, err := loader.Network()
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}
	slog.Info("network loaded", "nodes", net.Len(), "edges", net.EdgeCount())

	// ── Handler and metrics ───────────────────────────────────────────────────
	rec := metrics.New(prometheus.DefaultRegisterer)
	handler := api.New(net, cfg.Router, rec, prometheus.DefaultGatherer)

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	loader.OnChange(func(newCfg *config.Config) {
		newNet, err := config.BuildNetwork(newCfg.Network, loader.Dir())
		if err != nil {
			rec.ReloadFailed()
			slog.Warn("hot-reload skipped: network invalid", "err", err)
			return
		}
		handler.SwapNetwork(newNet, newCfg.Router)
		slog.Info("network hot-reloaded", "nodes", newNet.Len(), "edges", newNet.EdgeCount())
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutMs) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutMs) * time.Millisecond,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err = <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-quit:
	}
	slog.Info("shutting down…")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
