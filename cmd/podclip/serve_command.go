package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"podclip/internal/daemon"
	"podclip/internal/logging"
	"podclip/internal/preflight"
	"podclip/internal/store"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg, cfg.LogPath())
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			st, err := store.Open(cfg)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			d, err := daemon.New(cfg, st, logger)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(commandCtx(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return d.Run(runCtx)
		},
	}
}

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that directories and optional tools are ready",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(commandCtx(cmd), cfg)
			if ctx.jsonOutput() {
				return writeJSON(cmd, results)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "Config: %s (file present: %s)\n", ctx.configPath, yesNo(ctx.configSeen))
			for _, result := range results {
				kind := statusOK
				switch {
				case !result.Passed && result.Optional:
					kind = statusWarn
				case !result.Passed:
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			if !preflight.Ready(results) {
				return fmt.Errorf("preflight checks failed")
			}
			return nil
		},
	}
}

func commandCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
