package board

import (
	"encoding/json"
	"fmt"
	"os"
)

// TerrainDisplay carries the renderer-facing appearance of one terrain.
type TerrainDisplay struct {
	Color   string `json:"color"`
	Texture string `json:"texture,omitempty"`
}

// DefaultDisplayTable returns the built-in per-terrain colors. Texture
// references come from the content file; the renderer falls back to flat
// color when none is set.
func DefaultDisplayTable() map[Terrain]TerrainDisplay {
	return map[Terrain]TerrainDisplay{
		Wood:   {Color: "#1f7a3d"},
		Wheat:  {Color: "#e3b448"},
		Sheep:  {Color: "#9ccb5b"},
		Ore:    {Color: "#7d8289"},
		Brick:  {Color: "#b5532e"},
		Desert: {Color: "#d9c58f"},
	}
}

// LoadDisplayTable reads per-terrain display overrides from a JSON file,
// keyed by terrain name, and merges them over the defaults. A texture
// entry is a path under the static file root, e.g. "textures/forest.jpg"
// served as /static/textures/forest.jpg; the renderer keeps the flat
// color when no texture is set or the file is missing.
func LoadDisplayTable(filepath string) (map[Terrain]TerrainDisplay, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read display file: %w", err)
	}

	var raw map[string]TerrainDisplay
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse display JSON: %w", err)
	}

	table := DefaultDisplayTable()
	for name, display := range raw {
		terrain, ok := terrainByName[name]
		if !ok {
			return nil, fmt.Errorf("unknown terrain %q in %s", name, filepath)
		}
		if display.Color == "" {
			display.Color = table[terrain].Color
		}
		table[terrain] = display
	}
	return table, nil
}
