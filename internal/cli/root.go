// Package cli implements the fitplan CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/fitplan/internal/config"
	"github.com/rcliao/fitplan/internal/store"
)

var (
	dbPath     string
	formatFlag string
	envFile    string
	logLevel   string

	cfg config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "fitplan",
	Short: "Weekly meal and workout plans from a personal profile",
	Long: "Builds a seven-day meal plan and workout plan from a profile, either from the built-in catalogue " +
		"or through an OpenAI-compatible chat model. Submissions are logged to SQLite.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		if cfg, err = config.Load(envFile); err != nil {
			exitErr("load config", err)
		}
		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		initLogger(os.Stderr, level)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $FITPLAN_DB or ~/.fitplan/fitplan.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Read settings from this file (default: .env if present)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// initLogger installs a JSON slog handler writing to w.
func initLogger(w io.Writer, level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})))
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DBPath
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func textFormat() bool {
	return formatFlag == "text"
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// readInput reads the named file, or stdin when no file is given.
func readInput(args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	stat, _ := os.Stdin.Stat()
	if stat != nil && (stat.Mode()&os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no input: pass a file or pipe to stdin")
	}
	return io.ReadAll(os.Stdin)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
