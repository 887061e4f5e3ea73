package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tooba/internal/logging"
	"tooba/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the library browser until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			srv, err := server.New(cfg, logger)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			if err := srv.Start(signalCtx); err != nil {
				return fmt.Errorf("start server: %w", err)
			}
			defer srv.Stop()

			<-signalCtx.Done()
			logger.Info("tooba shutting down")
			return nil
		},
	}
}
