package main

import (
	"log"
	"os"

	"github.com/5w1tchy/isbn-books-api/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	v = viper.New()

	rootCmd = &cobra.Command{
		Use:   "api",
		Short: "ISBN book catalog REST API",
		Long: `Serves the /books REST API backed by PostgreSQL.

Every flag can also be set through the environment as BOOKS_<FLAG>, with
dashes replaced by underscores (e.g. BOOKS_MAX_BODY_BYTES=2048). .env and
.env.local in the working directory are loaded first.`,
		SilenceUsage: true,
		RunE:         runServe,
	}
)

func init() {
	cobra.OnInitialize(func() { config.LoadEnv(v) })

	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(serveCmd, exportCmd)
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Load(v, cmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("[api] %v", err)
		os.Exit(1)
	}
}
