package main

import (
	"context"

	"alphafeed/config"
	"alphafeed/internal/feed/session"
	"alphafeed/logger"

	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg := config.Load()

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	// run live-view session
	sess := session.New(cfg, log)
	sess.Start(context.Background())

	// Log connectivity transitions; this is the headless stand-in for the
	// dashboard's indicator light.
	states, cancel := sess.ConnStatesCh()
	defer cancel()
	for state := range states {
		log.Info("connectivity", zap.Stringer("state", state))
	}
}
