package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/discochess/arbiter/chess"
	"github.com/discochess/arbiter/internal/rules"
)

var perftCmd = &cobra.Command{
	Use:   "perft [DEPTH]",
	Short: "Count move-tree nodes from the initial position",
	Long: `Walk the legal move tree from the standard initial position and count
the leaf nodes at each depth. The counts have known reference values
(20, 400, 8902, ...), making this a quick self-check of the move
generator.

Examples:
  arbiter perft 4`,
	Args: cobra.ExactArgs(1),
	RunE: runPerft,
}

var perDivide bool

func init() {
	perftCmd.Flags().BoolVar(&perDivide, "divide", false, "break down the deepest count by first move")
	rootCmd.AddCommand(perftCmd)
}

func runPerft(cmd *cobra.Command, args []string) error {
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		return fmt.Errorf("depth must be a positive integer, got %q", args[0])
	}

	pos := chess.StartingPosition()
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := perft(pos, d)
		fmt.Printf("perft(%d) = %d (%s)\n", d, nodes, time.Since(start).Round(time.Microsecond))
	}

	if perDivide {
		fmt.Println()
		for _, m := range rules.LegalMoves(pos) {
			fmt.Printf("%s: %d\n", m, perft(rules.Apply(pos, m), depth-1))
		}
	}
	return nil
}

func perft(pos chess.Position, depth int) int {
	if depth == 0 {
		return 1
	}
	nodes := 0
	for _, m := range rules.LegalMoves(pos) {
		nodes += perft(rules.Apply(pos, m), depth-1)
	}
	return nodes
}
