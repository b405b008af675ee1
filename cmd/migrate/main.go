// Command migrate imports a legacy flat balance snapshot (a JSON object
// mapping user id to balance) into the accounts table, upserting by user id.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/coinkeeper/internal/pg"
)

func main() {
	var (
		file string
		dsn  string
	)
	flag.StringVar(&file, "f", "balances.json", "path to the legacy balance snapshot")
	flag.StringVar(&dsn, "d", os.Getenv("DATABASE_URI"), "database DSN")
	flag.Parse()

	if dsn == "" {
		log.Fatal().Msg("database DSN is required (-d flag or DATABASE_URI)")
	}

	data, err := os.ReadFile(file)
	if err != nil {
		log.Fatal().Err(err).Str("file", file).Msg("can't read snapshot")
	}

	var balances map[string]int64
	if err := json.Unmarshal(data, &balances); err != nil {
		log.Fatal().Err(err).Msg("can't parse snapshot")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("can't connect to database")
	}
	defer pool.Close()

	if err := pg.RunMigrations(pool); err != nil {
		log.Fatal().Err(err).Msg("can't run migrations")
	}

	if err := importBalances(ctx, pool, balances); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}

	log.Info().Int("accounts", len(balances)).Msg("import finished")
}

func importBalances(ctx context.Context, pool *pgxpool.Pool, balances map[string]int64) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO accounts (user_id, balance)
        VALUES ($1, GREATEST(0, $2))
        ON CONFLICT (user_id) DO UPDATE
        SET balance = GREATEST(0, $2), updated_at = now()
    `
	for uid, balance := range balances {
		userID, err := strconv.ParseInt(uid, 10, 64)
		if err != nil {
			log.Warn().Str("user_id", uid).Msg("skipping malformed user id")
			continue
		}
		if _, err := tx.Exec(ctx, query, userID, balance); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
