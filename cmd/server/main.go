package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wealthofnations/game-server-go/internal/catalog"
	"github.com/wealthofnations/game-server-go/internal/config"
	"github.com/wealthofnations/game-server-go/internal/game"
	"github.com/wealthofnations/game-server-go/internal/server"
	"github.com/wealthofnations/game-server-go/internal/wallet"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting Wealth of Nations server",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Optional PostgreSQL pool; everything runs in memory without it.
	var pool *pgxpool.Pool
	if cfg.Database.URL != "" {
		pool, err = openPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()
		logger.Info("database connection pool initialized",
			zap.Int32("max_conns", cfg.Database.MaxConns))
	}

	// Card catalog: built-in base set, or the cards table when so
	// configured.
	var provider catalog.Provider
	if cfg.Database.CatalogFromDB {
		dbProvider, err := catalog.LoadFromDB(ctx, pool)
		if err != nil {
			logger.Fatal("failed to load catalog from database", zap.Error(err))
		}
		provider = dbProvider
		logger.Info("catalog loaded from database", zap.Int("cards", dbProvider.Size()))
	} else {
		staticProvider := catalog.NewStaticProvider()
		provider = staticProvider
		logger.Info("catalog loaded from base set", zap.Int("cards", staticProvider.Size()))
	}

	engine := game.NewEngine(cfg.Game, provider, logger)
	logger.Info("game engine initialized",
		zap.Int("max_hand_size", cfg.Game.MaxHandSize),
		zap.Int("max_cards_per_turn", cfg.Game.MaxCardsPerTurn))

	var walletStore wallet.Store
	if cfg.Database.WalletFromDB {
		walletStore = wallet.NewPGStore(pool)
		logger.Info("wallet store initialized", zap.String("backend", "postgres"))
	} else {
		walletStore = wallet.NewMemoryStore()
		logger.Info("wallet store initialized", zap.String("backend", "memory"))
	}

	purchases := wallet.NewService(
		walletStore,
		engine.Events(),
		logger,
		engine.SessionGeneration,
		cfg.Wallet.SettleDelay,
	)
	logger.Info("purchase service initialized",
		zap.Duration("settle_delay", cfg.Wallet.SettleDelay))

	gateway := server.NewGateway(cfg.Server, engine, purchases, logger)
	go gateway.Run(ctx)

	go func() {
		if serveErr := gateway.ListenAndServe(); serveErr != nil {
			logger.Error("gateway server error", zap.Error(serveErr))
		}
	}()

	logger.Info("server initialized",
		zap.String("version", version),
		zap.String("address", cfg.Server.Address))

	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	logger.Info("shutting down gracefully...")
	cancel()

	logger.Info("server stopped")
}

func openPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
