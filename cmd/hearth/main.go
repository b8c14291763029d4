// Command hearth runs the Hearth assistant backend: an HTTP and
// WebSocket API over the chat engine, the memory store, and the
// conversation history.
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/hearthchat/hearth/config"
	"github.com/hearthchat/hearth/engine"
	"github.com/hearthchat/hearth/provider"
	"github.com/hearthchat/hearth/server"
	"github.com/hearthchat/hearth/store/cached"
	"github.com/hearthchat/hearth/store/sqlite"
)

func main() {
	cfg := config.Load()

	logCfg := zap.NewProductionConfig()
	if cfg.Debug {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer db.Close()

	memories, err := cached.NewMemoryStore(db)
	if err != nil {
		logger.Fatal("failed to build memory cache", zap.Error(err))
	}

	opts := []engine.Option{}
	if cfg.AnthropicKey != "" {
		opts = append(opts, engine.WithProvider(provider.NewAnthropic(cfg.AnthropicKey)))
	} else {
		logger.Warn("ANTHROPIC_API_KEY is not set, chat turns will be rejected")
	}
	if cfg.Model != "" {
		opts = append(opts, engine.WithDefaultModel(cfg.Model))
	}

	e := engine.New(memories, db, logger, opts...)

	srv := server.New(e, memories, db, logger, server.DebugInfo{
		AnthropicKeyConfigured: cfg.AnthropicKey != "",
		DBPath:                 cfg.DBPath,
	})

	logger.Info("hearth listening",
		zap.String("addr", cfg.Addr()),
		zap.Bool("anthropic_configured", cfg.AnthropicKey != ""))
	if err := srv.Run(cfg.Addr()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
