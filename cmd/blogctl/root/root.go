package root

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/baigashl/blog/internal/config"
	"github.com/baigashl/blog/internal/db"
	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "Blog admin CLI",
	Long:  "Command line interface for administering the blog database directly.",
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Optional helper to return the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}

// OpenDB connects to the database using the same environment configuration
// the server reads. Callers own the returned handle.
func OpenDB() (*sql.DB, error) {
	cfg := config.Load()
	return db.Connect(cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPass)
}
