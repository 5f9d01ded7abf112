package components

import (
	"github.com/automoto/bellybump/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SyncRect moves the collision object onto r and refreshes its cells.
func (o *ObjectData) SyncRect(r gamemath.Rect) {
	if o.Object == nil {
		return
	}
	o.X, o.Y = r.X, r.Y
	o.W, o.H = r.W, r.H
	o.Update()
}

type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
