// Package leveldata parses arena TMX files into plain data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Spawn roles as written in the TMX "role" property.
const (
	RoleAttacker = "attacker"
	RoleOpponent = "opponent"
)

// ArenaData holds the stage geometry parsed from a TMX file.
type ArenaData struct {
	MapWidth  int
	MapHeight int

	// Left and Right are the wall lines bodies bounce off.
	Left    float64
	Right   float64
	GroundY float64

	Spawns []SpawnPoint
}

// SpawnPoint is a mid-bottom anchor for an actor.
type SpawnPoint struct {
	X, Y   float64
	Role   string
	Facing int // -1 left, 1 right
}

// Spawn returns the first spawn point with the given role.
func (a *ArenaData) Spawn(role string) (SpawnPoint, bool) {
	for _, s := range a.Spawns {
		if s.Role == role {
			return s, true
		}
	}
	return SpawnPoint{}, false
}

func (a *ArenaData) Width() float64 {
	return a.Right - a.Left
}
