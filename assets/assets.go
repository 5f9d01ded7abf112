package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/bellybump/shared/leveldata"
)

// DefaultArena is the stage loaded when no other is requested.
const DefaultArena = "levels/arena.tmx"

//go:embed all:levels
var assetFS embed.FS

// LoadArena reads an embedded TMX stage.
func LoadArena(tmxPath string) (*leveldata.ArenaData, error) {
	arena, err := leveldata.LoadArena(assetFS, tmxPath)
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	return arena, nil
}

// ArenaPaths lists the embedded stages.
func ArenaPaths() ([]string, error) {
	entries, err := fs.ReadDir(assetFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			paths = append(paths, path.Join("levels", entry.Name()))
		}
	}
	return paths, nil
}
