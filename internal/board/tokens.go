package board

// TokenCount is the number of probability tokens on the board, one per
// non-desert tile.
const TokenCount = 18

// tokenPool is the standard token multiset: every dice sum except 7, with
// 2 and 12 appearing once and all other values twice.
var tokenPool = [TokenCount]int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// TokenPool returns a copy of the token multiset.
func TokenPool() [TokenCount]int {
	return tokenPool
}

// PipCount is the probability weight of a token for display: the number of
// dice combinations that roll it, 6 - |7 - token|.
func PipCount(token int) int {
	d := 7 - token
	if d < 0 {
		d = -d
	}
	return 6 - d
}

// HighFrequency reports whether a token is one of the two most likely
// values (6 or 8), which the renderer highlights.
func HighFrequency(token int) bool {
	return PipCount(token) == 5
}

// red tokens are subject to the adjacency separation rule.
func isRed(token int) bool {
	return token == 6 || token == 8
}

// low tokens are subject to the per-terrain clustering rule.
func isLow(token int) bool {
	return token == 2 || token == 3 || token == 12
}
