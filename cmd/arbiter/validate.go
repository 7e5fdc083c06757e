package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/arbiter/internal/codec"
	"github.com/discochess/arbiter/internal/pgn"
)

var validateCmd = &cobra.Command{
	Use:   "validate [FILE...]",
	Short: "Validate every game in one or more PGN files",
	Long: `Validate PGN files by replaying every game through the rules engine.
Each game must carry the mandatory headers and a movetext whose every
token names a legal move.

A replay failure reports the file, game number, ply and offending token.

Examples:
  arbiter validate games.pgn
  arbiter validate january.pgn.gz february.pgn.zst`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var failFast bool

func init() {
	validateCmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first invalid game")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	start := time.Now()
	var valid, invalid int

	for _, path := range args {
		n, errs, err := validateFile(path, logger)
		if err != nil {
			return err
		}
		valid += n - len(errs)
		invalid += len(errs)
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
			if failFast {
				return fmt.Errorf("%d game(s) validated, first failure above", valid)
			}
		}
	}

	fmt.Printf("%d valid, %d invalid in %s\n", valid, invalid, time.Since(start).Round(time.Millisecond))
	if invalid > 0 {
		return fmt.Errorf("%d invalid game(s)", invalid)
	}
	return nil
}

// validateFile replays every game in path. It returns the number of games
// seen and one error per invalid game; the error return is reserved for I/O
// failures.
func validateFile(path string, logger *zap.Logger) (int, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	rc, err := codec.ForPath(path).Reader(f)
	if err != nil {
		return 0, nil, fmt.Errorf("decompressing %q: %w", path, err)
	}
	defer rc.Close()

	var errs []error
	reader := pgn.NewReader(rc)
	n := 0
	for {
		game, err := reader.ReadGame()
		if errors.Is(err, io.EOF) {
			return n, errs, nil
		}
		n++
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: game %d: %w", path, n, err))
			if failFast {
				return n, errs, nil
			}
			continue
		}
		logger.Debug("game valid",
			zap.String("file", path),
			zap.Int("game", n),
			zap.Int("plies", game.Position.Ply()),
			zap.String("result", game.Result()),
		)
	}
}
