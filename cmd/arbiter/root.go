package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// Register the codecs used for compressed PGN archives.
	_ "github.com/discochess/arbiter/internal/codec/gzipcodec"
	_ "github.com/discochess/arbiter/internal/codec/noopcodec"
	_ "github.com/discochess/arbiter/internal/codec/zstdcodec"
)

var (
	// Global flags.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "arbiter",
	Short: "Replay, validate and inspect chess game records",
	Long: `Arbiter is a CLI tool for working with PGN game records. It replays
every move through a full rules engine, so any record it accepts is a
legal game.

Plain, gzip-compressed (.gz) and zstd-compressed (.zst) PGN files are
read transparently.

Examples:
  # Replay a game, printing the final board and result
  arbiter replay game.pgn

  # Validate every game in an archive
  arbiter validate games.pgn.zst

  # Count move-tree nodes from the initial position
  arbiter perft 4`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newLogger returns a development logger when --verbose is set, otherwise a
// no-op logger.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
