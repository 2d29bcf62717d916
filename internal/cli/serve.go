package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"postcraft/internal/logging"
	"postcraft/internal/metrics"
	"postcraft/internal/server"
)

const shutdownTimeout = 10 * time.Second

func (a *app) newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine as a JSON API",
		RunE: run("serve", func(cmd *cobra.Command, args []string) error {
			e, cfg, err := a.engine()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			clock, err := a.clock()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			api := server.New(cfg.Server, server.NewHandler(e, clock))
			servers := []*http.Server{api}
			if ms := metrics.StartServer(cfg.Metrics.Addr); ms != nil {
				servers = append(servers, ms)
			}
			printBanner(cmd.OutOrStdout())
			return serveAll(ctx, servers)
		}),
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config and POSTCRAFT_ADDR)")
	return cmd
}

// serveAll runs every server until ctx is cancelled or one of them fails,
// then shuts all of them down.
func serveAll(ctx context.Context, servers []*http.Server) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logging.Info("listening", logging.Fields{"addr": srv.Addr})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(sctx); err != nil {
				errs = append(errs, err)
			}
		}
		logging.Info("shutdown", logging.Fields{"servers": len(servers)})
		return errors.Join(errs...)
	})
	return g.Wait()
}
