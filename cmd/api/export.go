package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/5w1tchy/isbn-books-api/internal/repository/sqlconnect"
	"github.com/5w1tchy/isbn-books-api/internal/storage/s3"
	"github.com/5w1tchy/isbn-books-api/internal/store/books"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Upload a JSON snapshot of the catalog to S3",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		db, err := sqlconnect.ConnectDB(ctx, cfg.DatabaseURL, sqlconnect.PoolConfig{MaxOpen: 2})
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()

		client, err := s3.NewClient(ctx, s3.Options{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		})
		if err != nil {
			return err
		}

		key, err := s3.Export(ctx, books.New(db), client, cfg.S3Prefix, time.Now())
		if err != nil {
			return err
		}

		ttl, _ := cmd.Flags().GetDuration("link-ttl")
		if ttl > 0 {
			url, err := client.PresignDownload(ctx, key, ttl)
			if err != nil {
				log.Printf("[export] presign: %v", err)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().Duration("link-ttl", 15*time.Minute, "print a presigned download link valid this long (0 disables)")
}
