package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/hangman/internal/catalog"
	"github.com/rocketscienceinc/hangman/internal/config"
	"github.com/rocketscienceinc/hangman/internal/repository"
	"github.com/rocketscienceinc/hangman/internal/repository/storage"
	"github.com/rocketscienceinc/hangman/internal/usecase"
	"github.com/rocketscienceinc/hangman/transport/console"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	categories := conf.Categories
	if len(categories) == 0 {
		categories = catalog.Default()
	}

	words, err := catalog.New(rand.New(rand.NewSource(time.Now().UnixNano())), categories...) //nolint: gosec // it's ok
	if err != nil {
		return fmt.Errorf("could not build word catalog: %w", err)
	}

	scoreRepo, closeStorage, err := openScoreRepository(ctx, &conf.Storage)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close score storage", "error", err)
		}
	}()

	roundManager := usecase.NewRoundManager(logger, scoreRepo, words, conf.MaxWrongGuesses)

	log.Info("Starting console", "storage", conf.Storage.Backend, "categories", len(words.Categories()))

	if err = console.New(logger, roundManager, os.Stdin, os.Stdout, !conf.NoClear).Start(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console finished")

	return nil
}

// openScoreRepository picks the score store named by the config. The returned func releases it.
func openScoreRepository(ctx context.Context, conf *config.Storage) (repository.ScoreRepository, func() error, error) {
	switch conf.Backend {
	case config.BackendFile:
		return repository.NewFileScoreRepository(conf.FilePath), func() error { return nil }, nil

	case config.BackendRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisScoreRepository(redisStorage.Connection, conf.Redis.Key), redisStorage.Close, nil

	case config.BackendSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteScoreRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, conf.Backend)
}
