package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxslion/algod/pkg/api"
	"github.com/maxslion/algod/pkg/config"
	"github.com/maxslion/algod/pkg/dispatcher"
	"github.com/maxslion/algod/pkg/hardware"
	"github.com/maxslion/algod/pkg/log"
	"github.com/maxslion/algod/pkg/plugins"
	"github.com/maxslion/algod/pkg/procmgr"
	"github.com/maxslion/algod/pkg/progress"
	"github.com/maxslion/algod/pkg/sink"
	"github.com/maxslion/algod/pkg/store"
)

// shutdownGrace bounds the graceful stop of the gRPC server on SIGINT/SIGTERM
const shutdownGrace = 2 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the algorithm execution service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logLevel, _ := rootCmd.PersistentFlags().GetString("log-level")
		logJSON, _ := rootCmd.PersistentFlags().GetBool("log-json")
		log.Init(log.Config{
			Level:      log.Level(logLevel),
			JSONOutput: logJSON,
			LogDir:     cfg.LogDir,
		})

		if err := plugins.Load(cfg.PluginManifest); err != nil {
			return err
		}

		taskStore, err := store.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer taskStore.Close()

		progressMgr := progress.NewManager(taskStore)
		progressMgr.StartDBWriter()

		// The dispatcher consumes worker output, the process manager
		// produces it; the closure breaks the construction cycle.
		var disp *dispatcher.Dispatcher
		pm, err := procmgr.NewManager(procmgr.Config{}, func(taskID string, line []byte) {
			disp.HandleWorkerLine(taskID, line)
		})
		if err != nil {
			return err
		}

		hw := hardware.NewManager(pm)
		defer hw.Shutdown()

		sinkClient, err := sink.NewClient(cfg.ResultDir, cfg.ReporterTarget)
		if err != nil {
			return err
		}
		defer sinkClient.Close()

		disp = dispatcher.New(hw, progressMgr, sinkClient, cfg.LogDir)
		server := api.NewServer(disp, hw, taskStore, progressMgr)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start(cfg.ListenAddr())
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("gRPC server failed: %w", err)
		case <-ctx.Done():
		}

		log.Info("Shutting down...")
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		server.Stop(stopCtx)

		pm.Shutdown(true, false)
		progressMgr.Close()
		return nil
	},
}
