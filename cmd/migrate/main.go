package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/forgo/pokedex/api/internal/config"
	"github.com/forgo/pokedex/api/internal/database"
)

func main() {
	dir := flag.String("dir", "./migrations", "Directory containing .surql migration files")
	dryRun := flag.Bool("dry-run", false, "List migrations without applying them")
	timeout := flag.Duration("timeout", 30*time.Second, "Timeout for connecting and applying")

	flag.Parse()

	migrations, err := database.LoadMigrations(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading migrations: %v\n", err)
		os.Exit(1)
	}

	if *dryRun {
		for _, m := range migrations {
			fmt.Println(m.Name)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})
	if err := db.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to %s:%s: %v\n", cfg.Database.Host, cfg.Database.Port, err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := database.ApplyMigrations(ctx, db, migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying migrations: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Applied %d migration(s) to %s/%s\n", len(migrations), cfg.Database.Namespace, cfg.Database.Database)
}
