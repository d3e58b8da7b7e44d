package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/studentdesk/internal/client/api"
	"github.com/iudanet/studentdesk/internal/client/auth"
	"github.com/iudanet/studentdesk/internal/client/cli"
	"github.com/iudanet/studentdesk/internal/client/config"
	"github.com/iudanet/studentdesk/internal/client/iocli"
	"github.com/iudanet/studentdesk/internal/client/storage"
	"github.com/iudanet/studentdesk/internal/client/storage/boltdb"
	"github.com/iudanet/studentdesk/internal/client/storage/memory"
	"golang.org/x/time/rate"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", os.Getenv("STUDENTDESK_CONFIG"), "Path to YAML config file")
	serverURL := flag.String("server", "", "Backend URL")
	dbPath := flag.String("db", "", "Path to local session database")
	ephemeral := flag.Bool("ephemeral", false, "Keep the session in memory only")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	password := flag.String("password", "", "Password (not recommended, use env var or file)")
	passwordFile := flag.String("password-file", "", "Path to file containing password")

	flag.Usage = func() {
		_ = cli.PrintUsage(os.Stderr)
	}
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	args := flag.Args()
	if len(args) == 0 {
		_ = cli.PrintUsage(os.Stderr)
		return 1
	}
	command := args[0]

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Флаги командной строки важнее файла и окружения
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "server":
			cfg.ServerURL = *serverURL
		case "db":
			cfg.DBPath = *dbPath
		case "ephemeral":
			cfg.Ephemeral = *ephemeral
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// Ctrl+C отменяет текущий запрос
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, closeSession, err := openSession(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer closeSession()

	apiClient, err := api.NewClient(cfg.ServerURL, session,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logger),
		api.WithRateLimit(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	controller := auth.NewController(apiClient, session, logger)
	if err := controller.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	app := cli.New(iocli.NewStdio(), controller, apiClient, logger)
	app.SetPasswords(cli.Passwords{FromFile: *passwordFile, FromArgs: *password})
	apiClient.OnUnauthorized(app.HandleUnauthorized)

	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			return 2
		}
		return 1
	}
	return 0
}

// openSession открывает хранилище сессии: bbolt файл или память процесса
func openSession(ctx context.Context, cfg *config.Config) (storage.SessionStorage, func(), error) {
	if cfg.Ephemeral || cfg.DBPath == "" {
		return memory.NewSession(), func() {}, nil
	}

	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return boltStorage, func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}, nil
}

func printVersion() {
	fmt.Printf("StudentDesk Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
