package arbiter

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/discochess/arbiter/chess"
)

func TestNew_Defaults(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if g.Ply() != 0 {
		t.Errorf("Ply = %d, want 0", g.Ply())
	}
	if g.Turn() != chess.White {
		t.Errorf("Turn = %v, want white", g.Turn())
	}
	if got := len(g.LegalMoves()); got != 20 {
		t.Errorf("len(LegalMoves) = %d, want 20", got)
	}
	if g.Result() != Ongoing {
		t.Errorf("Result = %q, want %q", g.Result(), Ongoing)
	}
}

func TestGame_PlaySAN(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	m, err := g.PlaySAN("e4")
	if err != nil {
		t.Fatalf("PlaySAN(e4) error = %v", err)
	}
	if m.From != chess.MustParseSquare("e2") || m.To != chess.MustParseSquare("e4") {
		t.Errorf("move = %s, want e2e4", m)
	}
	if g.Ply() != 1 || g.Turn() != chess.Black {
		t.Errorf("after e4: ply %d turn %v", g.Ply(), g.Turn())
	}
	if diff := cmp.Diff([]string{"e4"}, g.Moves()); diff != "" {
		t.Errorf("Moves mismatch (-want +got):\n%s", diff)
	}
}

func TestGame_PlaySAN_RecordsCanonicalForm(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// A mating move played without its suffix is recorded with it.
	for _, token := range []string{"f3", "e5", "g4", "Qh4"} {
		if _, err := g.PlaySAN(token); err != nil {
			t.Fatalf("PlaySAN(%q) error = %v", token, err)
		}
	}
	if got := g.Moves()[3]; got != "Qh4#" {
		t.Errorf("recorded move = %q, want Qh4#", got)
	}
	if !g.IsCheckmate() {
		t.Error("fool's mate not detected")
	}
	if g.Result() != BlackWins {
		t.Errorf("Result = %q, want %q", g.Result(), BlackWins)
	}
	if g.Termination() != TerminationCheckmate {
		t.Errorf("Termination = %v, want checkmate", g.Termination())
	}
}

func TestGame_Play_IllegalMove(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = g.Play(chess.Move{
		From: chess.MustParseSquare("e2"),
		To:   chess.MustParseSquare("e5"),
	})
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("Play error = %v, want ErrIllegalMove", err)
	}
	if g.Ply() != 0 {
		t.Error("illegal move changed the game")
	}

	if _, err := g.PlaySAN("Qh5"); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("PlaySAN(Qh5) error = %v, want ErrIllegalMove", err)
	}
	if _, err := g.PlaySAN("???"); !errors.Is(err, ErrMalformedNotation) {
		t.Errorf("PlaySAN(???) error = %v, want ErrMalformedNotation", err)
	}
}

func TestGame_Undo(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	startKey := g.Position().Key()
	for _, token := range []string{"e4", "e5", "Nf3"} {
		if _, err := g.PlaySAN(token); err != nil {
			t.Fatalf("PlaySAN(%q) error = %v", token, err)
		}
	}
	if err := g.Annotate(3, "develops"); err != nil {
		t.Fatalf("Annotate error = %v", err)
	}

	if err := g.Undo(1); err != nil {
		t.Fatalf("Undo(1) error = %v", err)
	}
	if g.Ply() != 2 {
		t.Errorf("Ply after undo = %d, want 2", g.Ply())
	}
	if _, ok := g.Comment(3); ok {
		t.Error("comment on undone ply survived")
	}

	if err := g.Undo(2); err != nil {
		t.Fatalf("Undo(2) error = %v", err)
	}
	if g.Position().Key() != startKey {
		t.Error("undo did not restore the initial position")
	}

	if err := g.Undo(1); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo on fresh game error = %v, want ErrNothingToUndo", err)
	}
}

func TestGame_UndoThenReplayIsIdempotent(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := g.PlaySAN("e4"); err != nil {
		t.Fatalf("PlaySAN error = %v", err)
	}
	key := g.Position().Key()

	if err := g.Undo(1); err != nil {
		t.Fatalf("Undo error = %v", err)
	}
	if _, err := g.PlaySAN("e4"); err != nil {
		t.Fatalf("replay error = %v", err)
	}
	if g.Position().Key() != key {
		t.Error("replayed move reached a different position")
	}
}

func TestGame_Moves_ReturnsCopy(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, token := range []string{"e4", "e5"} {
		if _, err := g.PlaySAN(token); err != nil {
			t.Fatalf("PlaySAN(%q) error = %v", token, err)
		}
	}

	moves := g.Moves()
	moves[0] = "d4"
	if diff := cmp.Diff([]string{"e4", "e5"}, g.Moves()); diff != "" {
		t.Errorf("history corrupted through returned slice (-want +got):\n%s", diff)
	}
}

func TestGame_MoveCache(t *testing.T) {
	g, err := New(WithMoveCache(16))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	first := g.LegalMoves()
	second := g.LegalMoves()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached moves differ (-first +second):\n%s", diff)
	}

	// Mutating a returned slice must not poison later queries.
	first[0].To = chess.MustParseSquare("h8")
	third := g.LegalMoves()
	if diff := cmp.Diff(second, third); diff != "" {
		t.Errorf("cache poisoned through returned slice (-want +got):\n%s", diff)
	}
}

func TestGame_EncodePGN(t *testing.T) {
	g, err := New(
		WithPlayers("Kasparov", "Topalov"),
		WithEvent("Hoogovens", "Wijk aan Zee NED"),
		WithTag("Date", "1999.01.20"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, token := range []string{"e4", "d6"} {
		if _, err := g.PlaySAN(token); err != nil {
			t.Fatalf("PlaySAN(%q) error = %v", token, err)
		}
	}
	if err := g.Annotate(2, "the Pirc"); err != nil {
		t.Fatalf("Annotate error = %v", err)
	}

	got := g.EncodePGN()
	for _, want := range []string{
		`[Event "Hoogovens"]`,
		`[White "Kasparov"]`,
		`[Black "Topalov"]`,
		`[Result "*"]`,
		"1. e4 d6 {the Pirc} *",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("EncodePGN missing %q:\n%s", want, got)
		}
	}
}

func TestLoadPGN_RoundTrip(t *testing.T) {
	g, err := New(WithPlayers("A", "B"), WithTag("Date", "2024.06.01"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, token := range []string{"e4", "e5", "Nf3", "Nc6", "Bb5"} {
		if _, err := g.PlaySAN(token); err != nil {
			t.Fatalf("PlaySAN(%q) error = %v", token, err)
		}
	}

	loaded, err := LoadPGN(strings.NewReader(g.EncodePGN()))
	if err != nil {
		t.Fatalf("LoadPGN error = %v", err)
	}

	if diff := cmp.Diff(g.Moves(), loaded.Moves()); diff != "" {
		t.Errorf("Moves mismatch (-want +got):\n%s", diff)
	}
	if g.Position().Key() != loaded.Position().Key() {
		t.Error("loaded game reached a different position")
	}
	if white, _ := loaded.Tag("White"); white != "A" {
		t.Errorf("White tag = %q, want A", white)
	}

	// The loaded game keeps full history: undo must work.
	if err := loaded.Undo(5); err != nil {
		t.Fatalf("Undo on loaded game error = %v", err)
	}
	if loaded.Ply() != 0 {
		t.Errorf("Ply after full undo = %d, want 0", loaded.Ply())
	}
}

func TestLoadPGN_ResumedGameRecomputesResult(t *testing.T) {
	g, err := New(WithTag("Date", "2024.06.01"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, token := range []string{"f3", "e5", "g4"} {
		if _, err := g.PlaySAN(token); err != nil {
			t.Fatalf("PlaySAN(%q) error = %v", token, err)
		}
	}

	// The saved game is ongoing, so its Result tag is "*".
	loaded, err := LoadPGN(strings.NewReader(g.EncodePGN()))
	if err != nil {
		t.Fatalf("LoadPGN error = %v", err)
	}
	if _, err := loaded.PlaySAN("Qh4"); err != nil {
		t.Fatalf("PlaySAN(Qh4) error = %v", err)
	}

	got := loaded.EncodePGN()
	if !strings.Contains(got, `[Result "0-1"]`) {
		t.Errorf("resumed game kept stale Result header:\n%s", got)
	}
	if !strings.HasSuffix(strings.TrimSpace(got), "Qh4# 0-1") {
		t.Errorf("movetext not terminated by 0-1:\n%s", got)
	}
}

func TestGame_EncodePGN_ExplicitResultWhileOngoing(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := g.PlaySAN("e4"); err != nil {
		t.Fatalf("PlaySAN error = %v", err)
	}

	// An agreed draw cannot be derived from the board.
	g.SetTag("Result", Draw)

	got := g.EncodePGN()
	if !strings.Contains(got, `[Result "1/2-1/2"]`) {
		t.Errorf("explicit Result tag dropped:\n%s", got)
	}
	if !strings.HasSuffix(strings.TrimSpace(got), "1. e4 1/2-1/2") {
		t.Errorf("movetext not terminated by 1/2-1/2:\n%s", got)
	}
}

func TestLoadPGN_Malformed(t *testing.T) {
	_, err := LoadPGN(strings.NewReader("not a pgn"))
	if !errors.Is(err, ErrMalformedPGN) {
		t.Errorf("LoadPGN error = %v, want ErrMalformedPGN", err)
	}
}

func TestGame_FEN(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := g.PlaySAN("e4"); err != nil {
		t.Fatalf("PlaySAN error = %v", err)
	}

	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := g.FEN(); got != want {
		t.Errorf("FEN = %q, want %q", got, want)
	}
}

func TestNewFromFEN(t *testing.T) {
	// A rook endgame with White to move.
	g, err := NewFromFEN("8/8/8/8/8/5k2/8/4K2R w K - 0 40")
	if err != nil {
		t.Fatalf("NewFromFEN error = %v", err)
	}
	if g.Turn() != chess.White {
		t.Errorf("Turn = %v, want white", g.Turn())
	}
	if _, err := g.PlaySAN("O-O"); err != nil {
		t.Errorf("PlaySAN(O-O) error = %v", err)
	}

	if _, err := NewFromFEN("garbage"); !errors.Is(err, ErrInvalidFEN) {
		t.Errorf("NewFromFEN(garbage) error = %v, want ErrInvalidFEN", err)
	}
}

func TestWithGameMode(t *testing.T) {
	g, err := New(WithGameMode("blitz"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if mode, _ := g.Tag("GameMode"); mode != "blitz" {
		t.Errorf("GameMode tag = %q, want blitz", mode)
	}
	if got := g.EncodePGN(); !strings.Contains(got, `[GameMode "blitz"]`) {
		t.Errorf("EncodePGN missing GameMode header:\n%s", got)
	}
}

func TestPGNReader_MultipleGames(t *testing.T) {
	var sb strings.Builder
	for _, tokens := range [][]string{
		{"f3", "e5", "g4", "Qh4"},
		{"e4", "e5", "Nf3"},
	} {
		g, err := New(WithTag("Date", "2024.06.01"))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		for _, token := range tokens {
			if _, err := g.PlaySAN(token); err != nil {
				t.Fatalf("PlaySAN(%q) error = %v", token, err)
			}
		}
		if err := g.WritePGN(&sb); err != nil {
			t.Fatalf("WritePGN error = %v", err)
		}
	}

	reader := NewPGNReader(strings.NewReader(sb.String()))

	first, err := reader.ReadGame()
	if err != nil {
		t.Fatalf("ReadGame(1) error = %v", err)
	}
	if first.Result() != BlackWins {
		t.Errorf("first game Result = %q, want %q", first.Result(), BlackWins)
	}
	if first.Termination() != TerminationCheckmate {
		t.Errorf("first game Termination = %v, want checkmate", first.Termination())
	}

	second, err := reader.ReadGame()
	if err != nil {
		t.Fatalf("ReadGame(2) error = %v", err)
	}
	if second.Ply() != 3 {
		t.Errorf("second game Ply = %d, want 3", second.Ply())
	}

	if _, err := reader.ReadGame(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadGame past end error = %v, want io.EOF", err)
	}
}

func TestGame_DrawPredicates(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	shuffle := []string{"Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8"}
	for _, token := range shuffle {
		if g.CanClaimThreefoldRepetition() {
			t.Fatal("threefold claim available too early")
		}
		if _, err := g.PlaySAN(token); err != nil {
			t.Fatalf("PlaySAN(%q) error = %v", token, err)
		}
	}

	if !g.CanClaimThreefoldRepetition() {
		t.Error("threefold claim not available after two full shuffles")
	}
	if g.CanClaimFiftyMoveRule() {
		t.Error("fifty-move claim available after 8 plies")
	}
	if g.HasInsufficientMaterial() {
		t.Error("insufficient material reported on the full board")
	}
}
