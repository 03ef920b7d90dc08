package postgres

import (
	"context"
	"fmt"
	"net"
	"time"

	"braidr/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  createConn(*config, readConfig(*config)),
		Write: createConn(*config, writeConfig(*config)),
	}
}

// WithinTx runs fn inside a transaction on the write connection, committing on
// success and rolling back on error or panic.
func (c *Connection) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}

			return
		}

		err = tx.Commit()
	}()

	return fn(tx)
}

type connConfig struct {
	host     string
	port     string
	username string
	password string
	name     string
	timezone string
	sslMode  string
}

func readConfig(config config.Config) connConfig {
	read := config.DB.Postgres.Read

	return connConfig{
		host:     read.Host,
		port:     read.Port,
		username: read.Username,
		password: read.Password,
		name:     getDBName(config, read.Name),
		timezone: read.Timezone,
		sslMode:  read.SSLMode,
	}
}

func writeConfig(config config.Config) connConfig {
	write := config.DB.Postgres.Write

	return connConfig{
		host:     write.Host,
		port:     write.Port,
		username: write.Username,
		password: write.Password,
		name:     getDBName(config, write.Name),
		timezone: write.Timezone,
		sslMode:  write.SSLMode,
	}
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func createConn(config config.Config, conn connConfig) *sqlx.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s timezone=%s",
		conn.host,
		conn.port,
		conn.username,
		conn.password,
		conn.name,
		conn.sslMode,
		conn.timezone,
	)

	var (
		db  *sqlx.DB
		err error
	)

	maxRetry := max(config.DB.Postgres.MaxRetry, 1)
	waitTime := time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("maxRetry", maxRetry).
			Msg("Failed to connect to PostgreSQL, retrying")

		time.Sleep(waitTime)
	}

	if err != nil {
		log.Fatal().
			Err(err).
			Str("host", net.JoinHostPort(conn.host, conn.port)).
			Str("database", conn.name).
			Msg("Failed to connect to PostgreSQL")
	}

	db.SetMaxIdleConns(postgresMaxIdleConnection)
	db.SetMaxOpenConns(postgresMaxOpenConnection)

	log.Info().
		Str("host", net.JoinHostPort(conn.host, conn.port)).
		Str("database", conn.name).
		Msg("Connected to PostgreSQL")

	return db
}
