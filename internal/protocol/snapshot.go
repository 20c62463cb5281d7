package protocol

// TileLite is the renderer-facing description of one board tile. Token,
// pip and frequency fields are zero for the desert, which carries no token.
type TileLite struct {
	Index         int     `json:"index"`
	Terrain       string  `json:"terrain"`
	Color         string  `json:"color"`
	Texture       string  `json:"texture,omitempty"`
	Token         int     `json:"token,omitempty"`
	Pips          int     `json:"pips,omitempty"`
	HighFrequency bool    `json:"highFrequency,omitempty"`
	X             float64 `json:"x"`
	Z             float64 `json:"z"`
}

// BoardSnapshot is everything the renderer needs to draw one board: the 19
// tiles with their world-space placement, plus generation diagnostics.
type BoardSnapshot struct {
	Seed            int64      `json:"seed"`
	Tiles           []TileLite `json:"tiles"`
	HexSize         float64    `json:"hexSize"`
	Fallback        bool       `json:"fallback"`
	Attempts        int        `json:"attempts"`
	ProtocolVersion string     `json:"protocolVersion"`
}
