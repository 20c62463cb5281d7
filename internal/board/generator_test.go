package board

import (
	"math/rand/v2"
	"testing"

	"github.com/ddiliberto123/threejs-project/internal/geometry"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func assertStructurallyComplete(t *testing.T, layout Layout) {
	t.Helper()

	deserts := 0
	tokenCounts := make(map[int]int)
	for i, tile := range layout {
		if tile.Terrain == Desert {
			deserts++
			if tile.Token != 0 {
				t.Errorf("desert at position %d carries token %d", i, tile.Token)
			}
			continue
		}
		if tile.Token == 0 {
			t.Errorf("non-desert tile at position %d has no token", i)
		}
		tokenCounts[tile.Token]++
	}

	if deserts != 1 {
		t.Errorf("expected exactly one desert, got %d", deserts)
	}

	wantCounts := make(map[int]int)
	for _, token := range TokenPool() {
		wantCounts[token]++
	}
	for token, want := range wantCounts {
		if tokenCounts[token] != want {
			t.Errorf("token %d placed %d times, expected %d", token, tokenCounts[token], want)
		}
	}
	for token := range tokenCounts {
		if _, ok := wantCounts[token]; !ok {
			t.Errorf("token %d placed but not part of the standard multiset", token)
		}
	}
}

func TestGenerate_StructurallyComplete(t *testing.T) {
	gen := NewGenerator(newTestRand(1))
	for range 50 {
		layout, _ := gen.Generate()
		assertStructurallyComplete(t, layout)
	}
}

func TestGenerate_ValidatedLayoutSatisfiesRules(t *testing.T) {
	gen := NewGenerator(newTestRand(42))
	layout, result := gen.Generate()

	if result.Fallback {
		t.Fatalf("expected validation to converge within %d attempts", DefaultMaxAttempts)
	}
	if result.Attempts < 1 || result.Attempts > DefaultMaxAttempts {
		t.Fatalf("attempts out of range: %d", result.Attempts)
	}
	assertStructurallyComplete(t, layout)

	if !redTokensSeparated(layout) {
		t.Errorf("accepted layout has adjacent red tokens")
	}
	if !redTokensSpread(layout) {
		t.Errorf("accepted layout stacks a 6 or an 8 on one terrain")
	}
	if !lowTokensSpread(layout) {
		t.Errorf("accepted layout clusters low tokens on one terrain")
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	first, _ := NewGenerator(newTestRand(7)).Generate()
	second, _ := NewGenerator(newTestRand(7)).Generate()
	if first != second {
		t.Errorf("same seed produced different layouts")
	}
}

func TestGenerate_Fallback(t *testing.T) {
	notices := 0
	noticedAttempts := 0

	gen := NewGenerator(newTestRand(3))
	gen.MaxAttempts = 25
	gen.OnFallback = func(attempts int) {
		notices++
		noticedAttempts = attempts
	}
	gen.accept = func(Layout) bool { return false }

	layout, result := gen.Generate()

	if !result.Fallback {
		t.Fatalf("expected fallback when every candidate is rejected")
	}
	if result.Attempts != 25 {
		t.Errorf("expected 25 attempts, got %d", result.Attempts)
	}
	if notices != 1 {
		t.Errorf("expected exactly one fallback notice, got %d", notices)
	}
	if noticedAttempts != 25 {
		t.Errorf("notice reported %d attempts, expected 25", noticedAttempts)
	}

	// The fallback layout is unvalidated but still structurally complete.
	assertStructurallyComplete(t, layout)
}

func TestGenerate_RepeatedCallsStayComplete(t *testing.T) {
	gen := NewGenerator(newTestRand(9))
	gen.MaxAttempts = 5
	gen.accept = func(Layout) bool { return false }

	for range 10 {
		layout, result := gen.Generate()
		if !result.Fallback {
			t.Fatalf("stubbed validation should force fallback")
		}
		assertStructurallyComplete(t, layout)
	}
}

func TestTerrainPool_Multiplicities(t *testing.T) {
	counts := make(map[Terrain]int)
	for _, terrain := range TerrainPool() {
		counts[terrain]++
	}

	want := map[Terrain]int{
		Wood:   4,
		Wheat:  4,
		Sheep:  4,
		Ore:    3,
		Brick:  3,
		Desert: 1,
	}
	for terrain, n := range want {
		if counts[terrain] != n {
			t.Errorf("terrain %s: expected %d tiles, got %d", terrain, n, counts[terrain])
		}
	}
	if len(TerrainPool()) != geometry.TileCount {
		t.Errorf("terrain pool has %d entries, expected %d", len(TerrainPool()), geometry.TileCount)
	}
}
