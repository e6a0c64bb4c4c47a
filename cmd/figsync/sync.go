package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/yacobolo/figsync"
	"github.com/yacobolo/figsync/internal/figma"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Poll watched Figma nodes for design changes",
	Long: `Poll the watched Figma nodes every interval and report values that
differ from the last known snapshot. The local token snapshot is the
baseline for the first tick. Runs until interrupted unless --once is set.`,
	RunE: runSync,
}

func init() {
	f := syncCmd.Flags()
	f.String("source", ".", "Directory token file patterns are relative to")
	f.StringSlice("include", nil, "Glob patterns for token files (*.yaml, *.css)")
	f.StringSlice("nodes", nil, "Figma node ids or node URLs to watch")
	f.Duration("interval", 30*time.Second, "Polling interval")
	f.Bool("auto-apply", false, "Turn detected changes into style updates")
	f.String("apply-to", "", "Append applied style updates to this CSS file")
	f.String("listen", "", "Serve sync status on this address (e.g. :8080)")
	f.String("output-format", "text", "Output format: text|json|css")
	f.Bool("once", false, "Run a single tick and exit")
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	baseline, err := localSnapshot()
	if err != nil {
		return err
	}

	client, err := figma.NewClient(buildClientConfig())
	if err != nil {
		return err
	}

	cfg := buildSyncConfig()
	cfg.WatchedNodes = nodeIDs(cfg.WatchedNodes)
	if len(cfg.WatchedNodes) == 0 {
		logger.Warn("figsync: no watched nodes configured, ticks will find no changes")
	}

	quiet := getBool("quiet", false)
	format := figsync.DetermineOutputFormat(getString("sync.output-format", "text"), quiet)
	out := &resultPrinter{w: os.Stdout, format: format, color: getBool("color", false), quiet: quiet}

	opts := []figsync.Option{
		figsync.WithLogger(logger),
		figsync.WithBaseline(baseline),
		figsync.WithResultHandler(out.print),
	}
	if path := getString("sync.apply-to", ""); path != "" {
		opts = append(opts, figsync.WithStyleWriter(cssFileWriter(path)))
	}

	controller, err := figsync.NewController(client, cfg, opts...)
	if err != nil {
		return err
	}

	if getBool("once", false) {
		result := controller.Sync(ctx)
		if !result.OK() {
			return fmt.Errorf("sync failed: %d errors", len(result.Errors))
		}
		return nil
	}

	if addr := getString("sync.listen", ""); addr != "" {
		srv := &http.Server{
			Addr:              addr,
			Handler:           newStatusRouter(controller, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("figsync: status server listening", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("figsync: status server", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if _, err := controller.Start(ctx); err != nil {
		return err
	}
	<-controller.Done()

	stats := controller.Stats()
	logger.Info("figsync: stopped", "ticks", stats.Ticks, "failed", stats.Failed, "changes", stats.Changes)
	return nil
}

// nodeIDs accepts node ids or Figma URLs carrying a node-id parameter.
func nodeIDs(values []string) []string {
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id := figma.ParseNodeID(v); id != "" {
			v = id
		}
		ids = append(ids, v)
	}
	return ids
}

// resultPrinter writes tick results as they arrive. Skipped ticks are only
// shown in text mode.
type resultPrinter struct {
	mu     sync.Mutex
	w      io.Writer
	format figsync.OutputFormat
	color  bool
	quiet  bool
}

func (p *resultPrinter) print(result figsync.SyncResult) {
	if p.quiet {
		return
	}
	if p.format != figsync.OutputText && result.Skipped {
		return
	}
	if p.format == figsync.OutputText && result.OK() && len(result.Changes) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := figsync.WriteOutput(p.w, result, p.format, p.color); err != nil {
		logger.Warn("figsync: write output", "error", err)
	}
}

// cssFileWriter appends each style update to path as a CSS rule block.
func cssFileWriter(path string) figsync.StyleWriter {
	var mu sync.Mutex
	return figsync.StyleWriterFunc(func(update figsync.StyleUpdate) error {
		mu.Lock()
		defer mu.Unlock()

		// #nosec G304 - path comes from trusted configuration
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		if err := figsync.WriteStyleRules(f, []figsync.StyleUpdate{update}); err != nil {
			_ = f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		return f.Close()
	})
}
