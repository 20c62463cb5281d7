package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestNewBoard asks the server to deal a fresh layout. A nil seed means
// the server picks one; a fixed seed reproduces a board exactly.
type RequestNewBoard struct {
	Seed *int64 `json:"seed,omitempty"`
}
