package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/basedlsg/PLugg-sub000/internal/app"
	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/basedlsg/PLugg-sub000/internal/events"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var errInvalidMorphFlags = errors.New("--ticks, --every and --dt must be positive")

const shutdownTimeout = 5 * time.Second

func (c *cli) newLiveCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "live",
		Short: "Read words from stdin and stream frames as JSON lines",
		Long: `Live runs a session in real time. Each stdin line is submitted as a word or
phrase. Lines starting with "?" are anticipated instead, ":undo" and ":redo"
walk history and ":reset" clears context. Every event is written to stdout as
one JSON object per line. Once input closes, frames keep streaming until the
vector settles. When METRICS_ADDR is set, /metrics is served there.`,
		Example: `  echo "ocean" | wordsynth live
  METRICS_ADDR=:9090 wordsynth live --interval 33ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("interval") {
				interval = c.cfg.FrameInterval
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.runLive(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), interval)
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", app.DefaultFrameInterval, "Frame interval")
	return cmd
}

func (c *cli) runLive(ctx context.Context, in io.Reader, out io.Writer, interval time.Duration) error {
	ch := events.NewChannel(c.cfg.EventBuffer)
	session, err := app.NewSession(sessionConfig(c.cfg), app.Deps{Publisher: ch})
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go readLines(ctx, in, lines)

	g.Go(func() error {
		session.Run(ctx, interval)
		return nil
	})

	g.Go(func() error {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					slog.InfoContext(ctx, "Live: input closed, waiting for the vector to settle")
					awaitSettled(ctx, session, interval)
					return nil
				}
				handleLine(session, line)
			}
		}
	})

	g.Go(func() error {
		enc := newEncoder(out, false)
		for {
			select {
			case <-ctx.Done():
				return drain(ch, enc)
			case e := <-ch.Events():
				if err := enc.Encode(e); err != nil {
					return fmt.Errorf("write event: %w", err)
				}
			}
		}
	})

	if addr := c.cfg.MetricsAddr; addr != "" {
		srv := &http.Server{Addr: addr, Handler: metricsMux(), ReadHeaderTimeout: 5 * time.Second}
		g.Go(func() error {
			slog.Info("Metrics server listening", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
			defer done()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}

// drain writes whatever is still buffered.
func drain(ch *events.Channel, enc *json.Encoder) error {
	for {
		select {
		case e := <-ch.Events():
			if err := enc.Encode(e); err != nil {
				return fmt.Errorf("write event: %w", err)
			}
		default:
			return nil
		}
	}
}

// awaitSettled polls the session every interval until it settles or ctx ends.
func awaitSettled(ctx context.Context, session *app.Session, interval time.Duration) {
	if interval <= 0 {
		interval = app.DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for !session.Settled() {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func readLines(ctx context.Context, in io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("Live: reading input failed", "error", err)
	}
}

func handleLine(session *app.Session, line string) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
	case line == ":undo":
		session.Undo()
	case line == ":redo":
		session.Redo()
	case line == ":reset":
		session.ResetContext()
	case strings.HasPrefix(line, "?"):
		session.Anticipate(strings.TrimPrefix(line, "?"), 0)
	case len(domain.Tokenize(line)) > 1:
		session.SubmitPhrase(line)
	default:
		session.SubmitWord(line)
	}
}
