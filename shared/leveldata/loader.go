package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	ErrNoArena = errors.New("arena bounds not found")
	ErrNoSpawn = errors.New("spawn point not found")
)

const (
	arenaGroup  = "Arena"
	spawnGroup  = "Spawns"
	boundsName  = "bounds"
	groundProp  = "groundY"
	roleProp    = "role"
	facingProp  = "facing"
	facingLeft  = "left"
	facingRight = "right"
)

// LoadArena parses a TMX file and returns its arena bounds, ground line and
// spawn points. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		MapWidth:  arenaMap.Width * arenaMap.TileWidth,
		MapHeight: arenaMap.Height * arenaMap.TileHeight,
	}

	foundBounds := false
	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case arenaGroup:
			for _, o := range og.Objects {
				if o.Name != boundsName {
					continue
				}
				data.Left = o.X
				data.Right = o.X + o.Width
				data.GroundY = float64(o.Properties.GetInt(groundProp))
				if data.GroundY == 0 {
					data.GroundY = o.Y + o.Height
				}
				foundBounds = true
			}
		case spawnGroup:
			for _, o := range og.Objects {
				role := o.Properties.GetString(roleProp)
				if role == "" {
					role = o.Name
				}
				data.Spawns = append(data.Spawns, SpawnPoint{
					X:      o.X,
					Y:      o.Y,
					Role:   role,
					Facing: parseFacing(o.Properties.GetString(facingProp)),
				})
			}
		}
	}

	if !foundBounds {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoArena)
	}
	if data.Right <= data.Left {
		return nil, fmt.Errorf("%s: arena right %v not past left %v: %w", tmxPath, data.Right, data.Left, ErrNoArena)
	}

	for _, role := range []string{RoleAttacker, RoleOpponent} {
		if _, ok := data.Spawn(role); !ok {
			return nil, fmt.Errorf("%s: %q: %w", tmxPath, role, ErrNoSpawn)
		}
	}

	// Sort spawns left-to-right for consistent ordering
	sort.Slice(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].X < data.Spawns[j].X
	})

	return data, nil
}

func parseFacing(s string) int {
	switch strings.ToLower(s) {
	case facingLeft:
		return -1
	case facingRight:
		return 1
	}
	return 0
}
