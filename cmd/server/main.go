package main

import (
	"os"

	"contactrelay/internal/config"
	"contactrelay/internal/logging"
	"contactrelay/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logConfig := &logging.Config{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	// Only the presence of the credentials is logged, never their values
	if !cfg.SlackConfigured() {
		logger.Warn("Slack credentials are not configured; contact submissions will fail")
	}

	srv := server.NewServer(cfg)
	srv.Init()

	logger.Info("Listening on port %s", cfg.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
