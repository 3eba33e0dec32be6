package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/leosykes117/prefixlog/pkg/config"
	"github.com/leosykes117/prefixlog/pkg/console"
	"github.com/leosykes117/prefixlog/pkg/level"
	"github.com/leosykes117/prefixlog/pkg/prefixlog"
	"github.com/leosykes117/prefixlog/pkg/script"
	"github.com/leosykes117/prefixlog/pkg/store"
)

type app struct {
	cfg     *config.Config
	store   store.Store
	factory *prefixlog.Factory
	metrics *prefixlog.Metrics
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		console.L().Error("prefixlog:", err)
		_ = console.L().Sync()
		os.Exit(1)
	}
}

// execute runs the command line in args and releases the store and the
// console whether or not the command succeeded.
func execute(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(); cerr != nil {
		err = multierror.Append(err, cerr)
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "prefixlog",
		Short:         "Prefixed, leveled console logging",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./configs/config.yaml or ./config.yaml)")

	root.AddCommand(
		newDemoCmd(a),
		newPlayCmd(a),
		newLevelCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, cfgFile string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c := console.Init(
		console.WithFormat(cfg.Log.Format),
		console.WithColor(cfg.Log.Color),
	)
	if cfg.File != "" {
		c.Named("config").Debug("loaded", cfg.File)
	}

	st, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	store.SetGlobal(st)

	styling := prefixlog.ParseStyling(cfg.Log.Styling)
	if styling == prefixlog.StylingAuto && cfg.Log.UserAgent == "" && cfg.Log.Color {
		// No browser to sniff: a color terminal renders %c styles.
		styling = prefixlog.StylingOn
	}

	a.cfg = cfg
	a.store = st
	a.metrics = prefixlog.NewMetrics()
	a.factory = prefixlog.NewFactory(prefixlog.DefaultColorWheel(),
		prefixlog.WithSink(c),
		prefixlog.WithLevelName(cfg.Log.Level),
		prefixlog.WithPrefixColor(cfg.Log.PrefixColor),
		prefixlog.WithDebug(cfg.Log.Debug),
		prefixlog.WithUserAgent(cfg.Log.UserAgent),
		prefixlog.WithStyling(styling),
		prefixlog.WithStore(st),
		prefixlog.WithMetrics(a.metrics),
	)

	cmd.SetContext(console.WithContext(cmd.Context(), c))
	return nil
}

func (a *app) close() error {
	if a.cfg == nil {
		return nil
	}
	var result *multierror.Error
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close store: %w", err))
		}
	}
	// Syncing a terminal fails with EINVAL on some platforms; nothing is lost.
	if err := console.L().Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		result = multierror.Append(result, fmt.Errorf("sync console: %w", err))
	}
	return result.ErrorOrNil()
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Emit every console operation through a few prefixed loggers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, prefix := range []string{"api", "db", "cache"} {
				l := a.factory.New(prefix)
				l.Log("log is never filtered")
				l.Debug("debug shows at DEBUG only")
				l.Info("serving on %s", ":8080")
				l.Warn("slow query:", 812*time.Millisecond)
				l.Error("connection reset")

				l.Group("request", 42)
				l.Dir(map[string]any{"method": "GET", "path": "/users"})
				l.Table([]map[string]any{
					{"user": "ada", "role": "admin"},
					{"user": "alan", "role": "dev"},
				})
				l.GroupEnd()

				l.Time(prefix)
				l.Assert(prefix != "cache", "cache is cold")
				l.TimeEnd(prefix)
				_ = l.Close()
			}
			return nil
		},
	}
}

func newPlayCmd(a *app) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Play a script of console calls (stdin when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}
			l := a.factory.New(prefix)
			defer l.Close()
			return script.NewPlayer(l).Run(cmd.Context(), in)
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "script", "prefix of the script logger")
	return cmd
}

func newLevelCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "level",
		Short: "Read or write the persisted level",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the persisted level",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := a.store.Get(store.LevelKey)
				if errors.Is(err, store.ErrNotFound) {
					cmd.Println("(unset)")
					return nil
				}
				if err != nil {
					return fmt.Errorf("read level: %w", err)
				}
				cmd.Println(level.FromString(s))
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <level>",
			Short: "Persist a level for refreshing loggers to pick up",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				l := level.FromString(strings.TrimSpace(args[0]))
				if err := a.store.Set(store.LevelKey, l.String()); err != nil {
					return fmt.Errorf("write level: %w", err)
				}
				cmd.Println(l)
				return nil
			},
		},
	)
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	var (
		prefix string
		every  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Log heartbeats at every level while refreshing the level from the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if every <= 0 {
				return fmt.Errorf("--every must be positive, got %s", every)
			}
			ctx := cmd.Context()
			diag := console.FromContext(ctx).Named("watch")

			refresh := a.cfg.Log.RefreshInterval
			if refresh <= 0 {
				refresh = time.Second
			}
			l := a.factory.New(prefix, prefixlog.WithRefreshLevelInterval(refresh))
			defer l.Close()

			if addr := a.cfg.Metrics.Addr; addr != "" {
				srv := metricsServer(addr, a.metrics)
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						diag.Error("metrics server:", err)
					}
				}()
				defer srv.Close()
				diag.Info("serving metrics on", addr)
			}

			t := time.NewTicker(every)
			defer t.Stop()
			for n := 1; ; n++ {
				select {
				case <-ctx.Done():
					return nil
				case <-t.C:
				}
				l.Debug("heartbeat", n)
				l.Info("heartbeat", n)
				l.Warn("heartbeat", n)
				l.Error("heartbeat", n)
			}
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "watch", "prefix of the heartbeat logger")
	cmd.Flags().DurationVar(&every, "every", time.Second, "heartbeat interval")
	return cmd
}

func metricsServer(addr string, m *prefixlog.Metrics) *http.Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(m.Collectors()...)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
