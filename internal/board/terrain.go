package board

import "github.com/ddiliberto123/threejs-project/internal/geometry"

// Terrain is the resource type of one tile.
type Terrain int

const (
	Wood Terrain = iota
	Wheat
	Sheep
	Ore
	Brick
	Desert
)

var terrainNames = [...]string{
	Wood:   "wood",
	Wheat:  "wheat",
	Sheep:  "sheep",
	Ore:    "ore",
	Brick:  "brick",
	Desert: "desert",
}

var terrainByName = buildTerrainByName()

func buildTerrainByName() map[string]Terrain {
	byName := make(map[string]Terrain, len(terrainNames))
	for t, name := range terrainNames {
		byName[name] = Terrain(t)
	}
	return byName
}

func (t Terrain) String() string {
	if int(t) < 0 || int(t) >= len(terrainNames) {
		return "unknown"
	}
	return terrainNames[t]
}

// terrainPool is the fixed 19-tile terrain multiset: four each of wood,
// wheat and sheep, three each of ore and brick, and a single desert.
var terrainPool = [geometry.TileCount]Terrain{
	Wood, Wood, Wood, Wood,
	Wheat, Wheat, Wheat, Wheat,
	Sheep, Sheep, Sheep, Sheep,
	Ore, Ore, Ore,
	Brick, Brick, Brick,
	Desert,
}

// TerrainPool returns a copy of the terrain multiset.
func TerrainPool() [geometry.TileCount]Terrain {
	return terrainPool
}
