package main

import (
	"github.com/ddiliberto123/threejs-project/internal/board"
	"github.com/ddiliberto123/threejs-project/internal/geometry"
	"github.com/ddiliberto123/threejs-project/internal/protocol"
)

// hexSize is the center-to-corner distance of one tile in world units; the
// renderer scales the whole scene from it.
const hexSize = 1.0

const protocolVersion = "v0"

// buildSnapshot joins a generated layout with the static placement table
// and the display table into the wire form the renderer consumes. Pip
// counts and the high-frequency flag are derived here; they are display
// attributes, not generator state.
func buildSnapshot(layout board.Layout, result board.Result, seed int64, display map[board.Terrain]board.TerrainDisplay) protocol.BoardSnapshot {
	placements := geometry.Placements(hexSize)

	tiles := make([]protocol.TileLite, geometry.TileCount)
	for i, tile := range layout {
		d := display[tile.Terrain]
		lite := protocol.TileLite{
			Index:   i,
			Terrain: tile.Terrain.String(),
			Color:   d.Color,
			Texture: d.Texture,
			X:       placements[i].X,
			Z:       placements[i].Z,
		}
		if tile.Terrain != board.Desert {
			lite.Token = tile.Token
			lite.Pips = board.PipCount(tile.Token)
			lite.HighFrequency = board.HighFrequency(tile.Token)
		}
		tiles[i] = lite
	}

	return protocol.BoardSnapshot{
		Seed:            seed,
		Tiles:           tiles,
		HexSize:         hexSize,
		Fallback:        result.Fallback,
		Attempts:        result.Attempts,
		ProtocolVersion: protocolVersion,
	}
}
