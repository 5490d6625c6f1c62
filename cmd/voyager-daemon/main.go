package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brinevale/voyager-go/internal/adapters/journal"
	"github.com/brinevale/voyager-go/internal/adapters/persistence"
	"github.com/brinevale/voyager-go/internal/adapters/weathergen"
	appvoyage "github.com/brinevale/voyager-go/internal/application/voyage"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
	"github.com/brinevale/voyager-go/internal/infrastructure/config"
	"github.com/brinevale/voyager-go/internal/infrastructure/database"
	"github.com/brinevale/voyager-go/internal/infrastructure/logging"
	"github.com/brinevale/voyager-go/internal/infrastructure/pidfile"
	"github.com/brinevale/voyager-go/internal/infrastructure/registry"
)

func main() {
	// Parse command-line flags
	forceFlag := flag.Bool("force", false, "Kill any existing daemon and start a new one")
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	fmt.Println("Voyager Daemon v0.1.0")
	fmt.Println("=====================")

	// Load configuration
	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configFlag)

	// Acquire PID file lock to prevent multiple instances
	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)

	err := pf.Acquire()
	if err != nil {
		if *forceFlag {
			fmt.Println("Force mode enabled - attempting to kill existing daemon...")
			if killErr := pf.KillExisting(); killErr != nil {
				log.Fatalf("Failed to kill existing daemon: %v", killErr)
			}
			fmt.Println("Existing daemon killed")

			if err := pf.Acquire(); err != nil {
				log.Fatalf("Failed to acquire PID file lock after killing existing daemon: %v", err)
			}
		} else {
			log.Fatalf("Failed to acquire PID file lock: %v\nUse --force to kill the existing daemon", err)
		}
	}

	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()
	fmt.Println("PID file lock acquired")

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	logger, closeLog, err := logging.New(&cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	// 1. Database
	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	fmt.Println("Database connected")

	// 2. Registry
	reg, err := registry.Load(cfg.Simulation.RegistryDir)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	fmt.Printf("Registry loaded: %d ports, %d routes, %d ships\n",
		len(reg.Ports()), len(reg.Routes()), len(reg.ShipTemplates()))

	// 3. Engine
	var weatherAdapter voyage.WeatherAdapter = weathergen.NewGenerator(time.Now().UnixNano())
	if cfg.Simulation.WeatherCommand != "" {
		weatherAdapter = weathergen.NewCommandAdapter(cfg.Simulation.WeatherCommand,
			weathergen.NewGenerator(time.Now().UnixNano()))
	}

	store := persistence.NewGormVoyageRepository(db)
	engine := appvoyage.NewEngine(appvoyage.Dependencies{
		World:     reg,
		Weather:   weatherAdapter,
		Store:     store,
		Decisions: appvoyage.AutoDecisions{},
		Notifier:  journal.NewConsoleNotifier(logger.Writer()),
		Journal:   journal.NewTextJournal(logger.Writer()),
		Logger:    logger,
	})
	runner := appvoyage.NewRunner(engine, cfg.Simulation.DaysPerSecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 4. Resume interrupted auto voyages
	done := make(chan error, 1)
	if cfg.Daemon.ResumeOnStart {
		ids, err := store.ListActive(ctx)
		if err != nil {
			return fmt.Errorf("failed to list active voyages: %w", err)
		}
		logger.Printf("resuming %d active voyage(s)", len(ids))
		go func() {
			done <- runner.ResumeActive(ctx, cfg.Daemon.MaxVoyages)
		}()
	}

	// 5. Wait for completion or shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		fmt.Printf("\nReceived %s, shutting down...\n", sig)
		cancel()
		if cfg.Daemon.ResumeOnStart {
			select {
			case <-done:
			case <-time.After(cfg.Daemon.ShutdownTimeout):
				logger.Printf("shutdown timeout reached, exiting with voyages mid-day")
			}
		}
	case err := <-done:
		if err != nil {
			return err
		}
		fmt.Println("All active voyages complete")
	}
	return nil
}
