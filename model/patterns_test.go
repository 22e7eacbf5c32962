package model

import (
	"math/rand"
	"strings"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestPatternsParse(t *testing.T) {
	for _, name := range PatternNames() {
		board, ok := Pattern(name)
		if !ok {
			t.Fatalf("pattern %s not found", name)
		}
		g, err := Parse(board)
		if err != nil {
			t.Fatalf("pattern %s: %v", name, err)
		}
		if g.CountLivingCells() == 0 {
			t.Errorf("pattern %s has no living cells", name)
		}
	}
}

func TestPatternLookupIsCaseInsensitive(t *testing.T) {
	if _, ok := Pattern("Glider"); !ok {
		t.Error("expected Glider to resolve")
	}
	if _, ok := Pattern("spaceship"); ok {
		t.Error("expected unknown pattern to be missing")
	}
}

func TestRandomBoardDimensions(t *testing.T) {
	board := RandomBoard(30, 20, 0.2, newTestRand())
	g := mustParse(t, board)

	if g.GetWidth() != 30 || g.GetHeight() != 20 {
		t.Errorf("expected 30x20, got %dx%d", g.GetWidth(), g.GetHeight())
	}
}

func TestRandomBoardDensityBounds(t *testing.T) {
	full := mustParse(t, RandomBoard(6, 4, 1, newTestRand()))
	if full.CountLivingCells() != 24 {
		t.Errorf("expected a full board, got %d living cells", full.CountLivingCells())
	}

	empty := RandomBoard(6, 4, 0, newTestRand())
	if strings.ContainsRune(empty, DefaultAliveMarker) {
		t.Errorf("expected an empty board, got\n%s", empty)
	}
}

func TestRandomBoardIsDeterministicForSeed(t *testing.T) {
	a := RandomBoard(15, 15, 0.3, newTestRand())
	b := RandomBoard(15, 15, 0.3, newTestRand())
	if a != b {
		t.Error("expected identical boards for identical seeds")
	}
}
