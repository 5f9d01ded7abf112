package components

import (
	"github.com/automoto/bellybump/shared/leveldata"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	*leveldata.ArenaData
}

var Arena = donburi.NewComponentType[ArenaData]()
