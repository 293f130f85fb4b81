package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/campushq/advising-backend/internal/config"
)

// Schema migration runner. Expects DATABASE_URL from the environment
// (or .env) and SQL files under ./migrations by default.
func main() {
	var dir string
	var steps int
	flag.StringVar(&dir, "path", "migrations", "Path to migration files")
	flag.IntVar(&steps, "steps", 0, "Limit up/down to N steps (0 = all)")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", dir), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("migrate init: %v", err)
	}

	args := flag.Args()
	if len(args) < 1 {
		usage()
		return
	}

	switch args[0] {
	case "up":
		run(stepOrAll(m.Up, m.Steps, steps))
		fmt.Println("migrated up")
	case "down":
		run(stepOrAll(m.Down, m.Steps, -steps))
		fmt.Println("migrated down")
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("version: %v", err)
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
	case "force":
		if len(args) < 2 {
			log.Fatal("force requires a version argument")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("invalid version: %v", err)
		}
		run(m.Force(v))
		fmt.Printf("forced version to %d\n", v)
	default:
		usage()
	}
}

// stepOrAll uses Steps when a step count was given, the full walk otherwise.
func stepOrAll(all func() error, stepped func(int) error, n int) error {
	if n != 0 {
		return stepped(n)
	}
	return all()
}

func run(err error) {
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migration failed: %v", err)
	}
}

func usage() {
	fmt.Println("Usage: migrate [flags] <up|down|version|force <version>>")
	flag.PrintDefaults()
}
