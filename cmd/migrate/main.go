package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"contacthub-api/config"
	"contacthub-api/internal/infrastructure/db/postgres"
)

// Usage example on the command line:
// > go run ./cmd/migrate -file=migrations/001_init.sql
func main() {
	ctx := context.Background()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	filePtr := flag.String("file", "migrations/001_init.sql", "the sql file to execute")
	flag.Parse()

	if err = godotenv.Load(".env"); err != nil {
		logger.Fatal("error loading .env file", zap.Error(err))
	}
	cfg := config.Load()

	dsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	pool, err := postgres.New(ctx, logger, dsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	sql, err := os.ReadFile(*filePtr)
	if err != nil {
		logger.Fatal("failed to read migration file", zap.Error(err))
	}

	if _, err = pool.Exec(ctx, string(sql)); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	logger.Info("migration applied", zap.String("file", *filePtr))
}
