package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/DCNeighborhoods/DCN-Backend/internal/neighborhoods"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

// Replaces the neighborhood seed reference list from a JSON file. The running
// service syncs seeds additively at startup; this tool is for full refreshes
// when the source list changes.

var (
	seedPath = flag.String("file", "data/neighborhood-seeds/dc-metro-neighborhoods.json", "Path to the seed JSON")
	dsn      = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres DSN (default: env DATABASE_URL)")
	dryRun   = flag.Bool("dry-run", false, "Parse + validate only; no DB writes")
	confirm  = flag.Bool("confirm", false, "Required to perform destructive replace")
)

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()
	if *dsn == "" {
		fatalf("--dsn not provided and DATABASE_URL not set")
	}

	seeds, err := neighborhoods.LoadSeedFile(*seedPath)
	if err != nil {
		fatalf("seed file error: %v", err)
	}
	fmt.Printf("Loaded %d seeds from %s\n", len(seeds), *seedPath)

	if *dryRun {
		for _, s := range seeds {
			fmt.Printf("  %-30s %-3s alternates=%d\n", s.Name, s.Jurisdiction, len(s.AlternateNames))
		}
		fmt.Println("Dry run complete. No changes made.")
		return
	}

	if !*confirm {
		fatalf("Refusing to replace seeds without --confirm. Add --dry-run to preview.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		fatalf("connect: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		fatalf("ping: %v", err)
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		fatalf("begin tx: %v", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op if already committed
	}()

	var before int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM neighborhoods.neighborhood_seeds`).Scan(&before); err != nil {
		fatalf("pre-count: %v", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM neighborhoods.neighborhood_seeds`); err != nil {
		fatalf("clear seeds: %v", err)
	}

	for _, s := range seeds {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO neighborhoods.neighborhood_seeds
				(name, alternate_names, jurisdiction, source)
			VALUES ($1, $2, $3, $4)
		`, s.Name, pq.Array([]string(s.AlternateNames)), s.Jurisdiction, s.Source); err != nil {
			fatalf("insert seed %q: %v", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		fatalf("commit: %v", err)
	}

	fmt.Printf("Replaced %d seeds with %d\n", before, len(seeds))
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
