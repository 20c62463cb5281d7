package views

import (
	"context"
	"strings"
	"testing"

	"github.com/ddiliberto123/threejs-project/internal/protocol"
)

func TestIndexPage_EmbedsSnapshot(t *testing.T) {
	snapshot := protocol.BoardSnapshot{
		Seed:            99,
		HexSize:         1,
		Tiles:           []protocol.TileLite{{Index: 0, Terrain: "wood", Color: "#1f7a3d"}},
		ProtocolVersion: "v0",
	}

	var sb strings.Builder
	if err := IndexPage(snapshot).Render(context.Background(), &sb); err != nil {
		t.Fatalf("Failed to render: %v", err)
	}

	html := sb.String()
	for _, want := range []string{
		`id="board-snapshot"`,
		`"seed":99`,
		`"terrain":"wood"`,
		`/static/js/scene.js`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}
