package tags

import "github.com/yohamta/donburi"

var (
	Attacker = donburi.NewTag().SetName("Attacker")
	Opponent = donburi.NewTag().SetName("Opponent")
	Wall     = donburi.NewTag().SetName("Wall")
	Hitbox   = donburi.NewTag().SetName("Hitbox")
)

// Resolv tags for collision queries
const (
	ResolvSolid    = "solid"
	ResolvAttacker = "Attacker"
	ResolvOpponent = "Opponent"
	ResolvHitbox   = "Hitbox"
)
