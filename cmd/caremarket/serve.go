package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/GenghisKhal/assignment3/internal/database"
	"github.com/GenghisKhal/assignment3/internal/handler"
	"github.com/GenghisKhal/assignment3/internal/repository"
	"github.com/GenghisKhal/assignment3/internal/router"
	"github.com/GenghisKhal/assignment3/internal/server"
	"github.com/GenghisKhal/assignment3/internal/service"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(a *app) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if migrate {
				if err := database.Migrate(ctx, &a.logger, a.cfg); err != nil {
					return fmt.Errorf("failed to migrate database: %w", err)
				}
			}

			srv, err := server.New(ctx, a.cfg, &a.logger, a.loggerService)
			if err != nil {
				return err
			}

			if err := database.VerifyReferences(ctx, srv.DB.Pool); err != nil {
				srv.DB.Close()
				return err
			}

			repos := repository.NewRepositories(srv)
			services := service.NewServices(srv)
			srv.SetupHTTPServer(router.NewRouter(srv, handler.NewHandlers(srv, repos, services)))

			errCh := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			var runErr error
			select {
			case err := <-errCh:
				if err != nil {
					runErr = fmt.Errorf("server stopped: %w", err)
				}
			case sig := <-quit:
				a.logger.Info().Str("signal", sig.String()).Msg("shutting down server")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return errors.Join(runErr, err)
			}
			if runErr == nil {
				a.logger.Info().Msg("server exited properly")
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}
