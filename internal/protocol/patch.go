package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	EventID  int64  `json:"eventId"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type BoardRegenerated struct {
	Board BoardSnapshot `json:"board"`
}

type VariablesChanged struct {
	Entries map[string]any `json:"entries"`
}
