// cmd/meal-planner/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"meal-planner/internal/server"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}

func main() {
	// A missing .env is fine; real environment variables still apply.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	var (
		port        = flag.Int("port", envIntOr("MEAL_PLANNER_PORT", 8012), "Port for HTTP transport")
		host        = flag.String("host", envOr("MEAL_PLANNER_HOST", "127.0.0.1"), "Host address")
		address     = flag.String("address", "", "Address (alias for host)")
		catalogPath = flag.String("catalog", envOr("MEAL_PLANNER_CATALOG", ""), "Catalog file (.json, .yaml, .yml)")
		dbPath      = flag.String("db-path", envOr("MEAL_PLANNER_DB_PATH", ""), "SQLite catalog store path")
		version     = flag.Bool("version", false, "Show version")
	)
	flag.Parse()

	if *version {
		fmt.Println("meal-planner version 1.0.0")
		os.Exit(0)
	}

	// Use address if provided, otherwise use host
	hostAddr := *host
	if *address != "" {
		hostAddr = *address
	}

	config := &server.Config{
		Host:        hostAddr,
		Port:        *port,
		CatalogPath: *catalogPath,
		DBPath:      *dbPath,
	}

	srv, err := server.NewMealPlannerServer(config)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-sigCh:
		log.Println("Received shutdown signal")
	case err := <-errCh:
		log.Printf("Server error: %v", err)
	}

	log.Println("Shutting down...")
	cancel()
	if err := srv.Stop(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
