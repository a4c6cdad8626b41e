// Command scoper-worker runs the Temporal worker that hosts the proposal
// workflow and its collaborator activities.
package main

import (
	"flag"
	"log/slog"
	"os"

	"go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahale/go-scoper/internal/configuration"
	"github.com/ahale/go-scoper/internal/worker"
	"github.com/ahale/go-scoper/internal/workflow"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file (optional)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := configuration.LoadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	extractor, err := worker.InitializeExtractor(cfg)
	if err != nil {
		logger.Error("failed to initialize extractor", "error", err)
		os.Exit(1)
	}
	generator, err := worker.InitializeGenerator(cfg)
	if err != nil {
		logger.Error("failed to initialize generator", "error", err)
		os.Exit(1)
	}

	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		logger.Error("failed to connect to Temporal", "error", err, "host_port", cfg.Temporal.HostPort)
		os.Exit(1)
	}
	defer c.Close()

	w := sdkworker.New(c, workflow.TaskQueue, sdkworker.Options{})
	worker.RegisterAll(w, extractor, generator)

	logger.Info("scoper worker starting",
		"task_queue", workflow.TaskQueue,
		"namespace", cfg.Temporal.Namespace)

	if err := w.Run(sdkworker.InterruptCh()); err != nil {
		logger.Error("worker exited with error", "error", err)
		os.Exit(1)
	}
}
