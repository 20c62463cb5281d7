package board

import "github.com/ddiliberto123/threejs-project/internal/geometry"

// Valid reports whether a layout satisfies all three fairness rules.
func Valid(l Layout) bool {
	return redTokensSeparated(l) && redTokensSpread(l) && lowTokensSpread(l)
}

// redTokensSeparated checks that no two tiles sharing a hex edge both hold
// a 6 or an 8. Desert tiles are skipped on both sides of the edge; the
// desert neither constrains nor is constrained by token rules.
func redTokensSeparated(l Layout) bool {
	for i, tile := range l {
		if tile.Terrain == Desert {
			continue
		}
		if !isRed(tile.Token) {
			continue
		}
		for _, j := range geometry.AdjacentTo(i) {
			if l[j].Terrain == Desert {
				continue
			}
			if isRed(l[j].Token) {
				return false
			}
		}
	}
	return true
}

// redTokensSpread checks that no terrain holds more than one 6 nor more
// than one 8 across its tiles; the two values are counted independently.
func redTokensSpread(l Layout) bool {
	sixes := make(map[Terrain]int)
	eights := make(map[Terrain]int)
	for _, tile := range l {
		switch tile.Token {
		case 6:
			sixes[tile.Terrain]++
			if sixes[tile.Terrain] > 1 {
				return false
			}
		case 8:
			eights[tile.Terrain]++
			if eights[tile.Terrain] > 1 {
				return false
			}
		}
	}
	return true
}

// lowTokensSpread checks that no terrain holds more than one low token
// (2, 3 or 12) across its tiles.
func lowTokensSpread(l Layout) bool {
	lows := make(map[Terrain]int)
	for _, tile := range l {
		if !isLow(tile.Token) {
			continue
		}
		lows[tile.Terrain]++
		if lows[tile.Terrain] > 1 {
			return false
		}
	}
	return true
}
