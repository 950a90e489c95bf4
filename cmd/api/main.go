package main

import (
	"fmt"
	"os"

	"github.com/idyllic-labs/idyllic-api/internal/app"
	"github.com/idyllic-labs/idyllic-api/internal/common/config"
	"github.com/idyllic-labs/idyllic-api/internal/common/logger"
	srv "github.com/idyllic-labs/idyllic-api/internal/common/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to load config: %v\n", err))
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogDir, "api", cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	a := app.New(cfg, log)

	serverConfig := srv.DefaultServerConfig(cfg.Addr())
	server := srv.NewServer(serverConfig, a.Handler)

	srv.StartWithGracefulShutdown(server, log, "api")
}
