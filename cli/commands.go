package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"quillpress/app/config"
	"quillpress/app/routes"

	"github.com/dgraph-io/badger/v4"
	"github.com/spf13/cobra"
)

const cliVersion = "1.0.0"

var yes bool

var rootCmd = &cobra.Command{
	Use:     "quillpress",
	Short:   "Quillpress blogging platform server",
	Version: cliVersion,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the blog API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := badger.Open(badger.DefaultOptions(cfg.DBPath))
		if err != nil {
			return fmt.Errorf("failed to open database: %v", err)
		}
		defer db.Close()

		router := routes.SetupRoutes(db, cfg)
		slog.Info("starting server", "addr", cfg.Addr, "db", cfg.DBPath)
		return routes.StartServer(cfg.Addr, router)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if _, err := os.Stat(cfg.DBPath); err == nil {
			return fmt.Errorf("database already exists at %s, run 'clean' first to reinitialize", cfg.DBPath)
		}

		if err := os.MkdirAll(cfg.DBPath, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %v", err)
		}

		db, err := badger.Open(badger.DefaultOptions(cfg.DBPath))
		if err != nil {
			return fmt.Errorf("failed to initialize database: %v", err)
		}
		defer db.Close()

		fmt.Println("Database initialized successfully")
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
			fmt.Println("Database is already clean (does not exist)")
			return nil
		}

		if !yes {
			return fmt.Errorf("refusing to delete %s without --yes", cfg.DBPath)
		}

		if err := os.RemoveAll(cfg.DBPath); err != nil {
			return fmt.Errorf("failed to clean database: %v", err)
		}
		fmt.Println("Database cleaned successfully")
		return nil
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create a backup of the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
			return fmt.Errorf("no database exists to backup")
		}

		backupDir := "data/backups"
		if err := os.MkdirAll(backupDir, 0755); err != nil {
			return fmt.Errorf("failed to create backup directory: %v", err)
		}

		db, err := badger.Open(badger.DefaultOptions(cfg.DBPath))
		if err != nil {
			return fmt.Errorf("failed to open database: %v", err)
		}
		defer db.Close()

		backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
		f, err := os.Create(backupFile)
		if err != nil {
			return fmt.Errorf("failed to create backup file: %v", err)
		}
		defer f.Close()

		if _, err := db.Backup(f, 0); err != nil {
			return fmt.Errorf("failed to backup database: %v", err)
		}

		fmt.Printf("Database backed up successfully to %s\n", backupFile)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore database from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		backupFile := args[0]

		if _, err := os.Stat(backupFile); os.IsNotExist(err) {
			return fmt.Errorf("backup file does not exist: %s", backupFile)
		}

		if _, err := os.Stat(cfg.DBPath); err == nil {
			if !yes {
				return fmt.Errorf("refusing to replace existing database at %s without --yes", cfg.DBPath)
			}
			if err := os.RemoveAll(cfg.DBPath); err != nil {
				return fmt.Errorf("failed to remove existing database: %v", err)
			}
		}

		if err := os.MkdirAll(cfg.DBPath, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %v", err)
		}

		db, err := badger.Open(badger.DefaultOptions(cfg.DBPath))
		if err != nil {
			return fmt.Errorf("failed to open database: %v", err)
		}
		defer db.Close()

		f, err := os.Open(backupFile)
		if err != nil {
			return fmt.Errorf("failed to open backup file: %v", err)
		}
		defer f.Close()

		if err := db.Load(f, 4); err != nil {
			return fmt.Errorf("failed to restore database: %v", err)
		}

		fmt.Println("Database restored successfully")
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation check")
	restoreCmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation check")
	rootCmd.AddCommand(serveCmd, initCmd, cleanCmd, backupCmd, restoreCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
