package board

import (
	"math/rand/v2"

	"github.com/ddiliberto123/threejs-project/internal/geometry"
)

// Tile is one cell of a generated layout. Desert tiles carry Token 0.
type Tile struct {
	Terrain Terrain
	Token   int
}

// Layout assigns a terrain, and for non-desert tiles a token, to every
// position index of the board.
type Layout [geometry.TileCount]Tile

// DefaultMaxAttempts bounds the rejection-sampling loop.
const DefaultMaxAttempts = 1000

// Result describes how a layout was produced.
type Result struct {
	// Attempts is the number of candidates dealt, including the accepted one.
	Attempts int
	// Fallback is true when the attempt budget ran out and the last
	// candidate was returned without passing validation.
	Fallback bool
}

// Generator produces board layouts by rejection sampling: deal a random
// candidate, accept it if it satisfies the fairness rules, otherwise deal
// again up to MaxAttempts. It never fails outright; when the budget runs
// out it returns the last candidate, which is structurally complete but
// may violate fairness rules.
type Generator struct {
	Rand        *rand.Rand
	MaxAttempts int             // 0 means DefaultMaxAttempts
	OnFallback  func(attempts int) // diagnostic notice, called at most once per Generate

	accept func(Layout) bool // test hook; nil means Valid
}

// NewGenerator returns a generator drawing from the given source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{Rand: rng}
}

// Generate returns a complete layout and a result describing whether it
// passed validation or came from the fallback path.
func (g *Generator) Generate() (Layout, Result) {
	maxAttempts := g.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	accept := g.accept
	if accept == nil {
		accept = Valid
	}

	var candidate Layout
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate = g.deal()
		if accept(candidate) {
			return candidate, Result{Attempts: attempt}
		}
	}

	if g.OnFallback != nil {
		g.OnFallback(maxAttempts)
	}
	return candidate, Result{Attempts: maxAttempts, Fallback: true}
}

// deal builds one structurally complete candidate: a shuffled terrain
// multiset over positions 0..18, with shuffled tokens consumed in position
// order and the desert skipped. Every candidate places all 18 tokens, so
// even a fallback layout is fully populated.
func (g *Generator) deal() Layout {
	terrains := terrainPool
	g.Rand.Shuffle(len(terrains), func(i, j int) {
		terrains[i], terrains[j] = terrains[j], terrains[i]
	})

	tokens := tokenPool
	g.Rand.Shuffle(len(tokens), func(i, j int) {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	})

	var layout Layout
	next := 0
	for i, terrain := range terrains {
		layout[i].Terrain = terrain
		if terrain == Desert {
			continue
		}
		layout[i].Token = tokens[next]
		next++
	}
	return layout
}
