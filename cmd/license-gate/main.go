package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	licensegate "github.com/LerianStudio/license-gate"
	"github.com/LerianStudio/license-gate/cli"
	"github.com/LerianStudio/license-gate/gate"
	"github.com/LerianStudio/license-gate/internal/shutdown"
	"github.com/LerianStudio/license-gate/util"
)

// Set at build time with -ldflags "-X main.appHint=... -X main.handshakeSecret=...".
var (
	appHint         string
	handshakeSecret string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx))
}

func run(ctx context.Context) int {
	logger := zap.InitializeLogger()

	cfg, err := licensegate.LoadFromEnv()
	if err != nil {
		logger.Errorf("Failed to load configuration: %v", err)
		return 1
	}

	if cfg.AppHint == "" {
		cfg.AppHint = appHint
	}

	if cfg.HandshakeSecret == "" {
		cfg.HandshakeSecret = handshakeSecret
	}

	// Missing settings surface through command results, not a hard exit.
	if err := util.ValidateEnvVariables(&cfg, logger); err != nil {
		logger.Warnf("Starting with incomplete configuration: %v", err)
	}

	var l log.Logger = logger

	client, err := gate.New(cfg, &l)
	if err != nil {
		return 1
	}
	defer client.Close()

	client.SetTerminationHandler(shutdown.ExitHandler(os.Stderr, os.Exit))

	if err := cli.NewRootCommand(client).ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}
