package factory

import (
	"github.com/automoto/bellybump/archetypes"
	"github.com/automoto/bellybump/components"
	"github.com/automoto/bellybump/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena builds the collision space for a stage along with its two
// side walls and ground strip.
func CreateArena(ecs *ecs.ECS, data *leveldata.ArenaData) *donburi.Entry {
	CreateSpace(ecs, data.MapWidth, data.MapHeight, spaceCellSize, spaceCellSize)

	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{ArenaData: data})

	w, h := float64(data.MapWidth), float64(data.MapHeight)
	if data.Left > 0 {
		CreateWall(ecs, 0, 0, data.Left, h)
	}
	if data.Right < w {
		CreateWall(ecs, data.Right, 0, w-data.Right, h)
	}
	if data.GroundY < h {
		CreateWall(ecs, data.Left, data.GroundY, data.Width(), h-data.GroundY)
	}

	return arena
}
