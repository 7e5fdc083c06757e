package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/arbiter/internal/codec"
	"github.com/discochess/arbiter/internal/fen"
	"github.com/discochess/arbiter/internal/pgn"
	"github.com/discochess/arbiter/internal/rules"
)

var replayCmd = &cobra.Command{
	Use:   "replay [FILE]",
	Short: "Replay a PGN game and print its final position",
	Long: `Replay a PGN game move by move through the rules engine and print
the move list, the final board and the engine's verdict on the result.

Examples:
  # Replay the only game in a file
  arbiter replay game.pgn

  # Replay the third game of a compressed archive
  arbiter replay games.pgn.zst --game 3`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

var (
	gameIndex  int
	showBoards bool
)

func init() {
	replayCmd.Flags().IntVar(&gameIndex, "game", 1, "1-indexed game to replay in a multi-game file")
	replayCmd.Flags().BoolVar(&showBoards, "boards", false, "print the board after every move")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	if gameIndex < 1 {
		return fmt.Errorf("--game must be positive, got %d", gameIndex)
	}

	game, err := readGameAt(args[0], gameIndex)
	if err != nil {
		return err
	}
	logger.Debug("game decoded",
		zap.String("file", args[0]),
		zap.Int("game", gameIndex),
		zap.Int("plies", game.Position.Ply()),
	)

	fmt.Printf("%s vs %s, %s (%s)\n",
		game.Tags[pgn.TagWhite], game.Tags[pgn.TagBlack],
		game.Tags[pgn.TagEvent], game.Tags[pgn.TagDate])

	for i, san := range game.Position.MoveHistory {
		if i%2 == 0 {
			fmt.Printf("%d. %s", i/2+1, san)
		} else {
			fmt.Printf(" %s\n", san)
		}
		if showBoards {
			if i%2 == 0 {
				fmt.Println()
			}
			fmt.Println(game.Positions[i+1].Board)
		}
	}
	if len(game.Position.MoveHistory)%2 == 1 {
		fmt.Println()
	}

	fmt.Println()
	fmt.Println(game.Position.Board)
	fmt.Printf("FEN:         %s\n", fen.Encode(game.Position))
	fmt.Printf("Result:      %s\n", game.Result())
	if t := rules.Classify(game.Position); t != rules.TerminationNone {
		fmt.Printf("Termination: %s\n", t)
	}
	if secs := game.TotalTimeSeconds(); secs > 0 {
		fmt.Printf("Time:        %ds\n", secs)
	}
	return nil
}

// readGameAt decodes the index-th game of a possibly compressed PGN file.
func readGameAt(path string, index int) (*pgn.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	rc, err := codec.ForPath(path).Reader(f)
	if err != nil {
		return nil, fmt.Errorf("decompressing %q: %w", path, err)
	}
	defer rc.Close()

	reader := pgn.NewReader(rc)
	for n := 1; ; n++ {
		game, err := reader.ReadGame()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%q holds only %d game(s)", path, n-1)
		}
		if err != nil {
			return nil, fmt.Errorf("game %d of %q: %w", n, path, err)
		}
		if n == index {
			return game, nil
		}
	}
}
