package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	mw "github.com/5w1tchy/isbn-books-api/internal/api/middlewares"
	"github.com/5w1tchy/isbn-books-api/internal/api/router"
	"github.com/5w1tchy/isbn-books-api/internal/config"
	"github.com/5w1tchy/isbn-books-api/internal/repository/sqlconnect"
	"github.com/5w1tchy/isbn-books-api/internal/store/books"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	for _, w := range cfg.Warnings() {
		log.Printf("[config] warning: %s", w)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlconnect.ConnectDB(ctx, cfg.DatabaseURL, sqlconnect.PoolConfig{
		MaxOpen: cfg.DBMaxOpen,
		MaxIdle: cfg.DBMaxIdle,
	})
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()
	log.Println("[db] connected")

	rdb, err := connectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           buildHandler(cfg, db, rdb),
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[api] listening on %s (tls=%t)", cfg.Addr, cfg.TLS())
		if cfg.TLS() {
			errCh <- server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			errCh <- server.ListenAndServe()
		}
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("[api] shutting down (timeout %s)", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("[api] stopped")
	return nil
}

func buildHandler(cfg config.Config, db *sql.DB, rdb *redis.Client) http.Handler {
	mws := []mw.Middleware{
		mw.RequestID,
		mw.Recovery,
		mw.AccessLog,
		mw.ResponseTime,
		mw.SecurityHeaders(cfg.TLS()),
		mw.Cors(cfg.CorsOrigins),
		mw.BodySizeLimit(cfg.MaxBodyBytes),
	}
	if rdb != nil {
		tb := mw.NewRedisTokenBucket(rdb, cfg.RatePerSecond, cfg.RateBurst, mw.PerIPKey("tb"))
		mws = append(mws, tb.Middleware)
	}
	mws = append(mws, mw.Compression)

	return mw.Chain(router.Router(books.New(db), db), mws...)
}

// connectRedis returns nil when url is empty. An unreachable Redis is logged,
// not fatal: the limiter fails open.
func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(url) // e.g. rediss://default:<token>@host:port
	if err != nil {
		return nil, fmt.Errorf("invalid redis-url: %w", err)
	}
	opt.DialTimeout = 2 * time.Second
	opt.ReadTimeout = 500 * time.Millisecond
	opt.WriteTimeout = 500 * time.Millisecond
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("[redis] ping failed: %v (rate limiter will allow requests until it recovers)", err)
	} else {
		log.Println("[redis] connected")
	}
	return rdb, nil
}
