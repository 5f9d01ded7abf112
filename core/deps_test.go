package core

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The simulation must build and test on machines without a display or
// audio device, so nothing it links may pull in ebiten.
func TestHeadlessPackagesDoNotImportEbiten(t *testing.T) {
	gobin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not available")
	}

	for _, pkg := range []string{"./core", "./systems/sim", "./config", "./assets", "./cmd/replay"} {
		t.Run(pkg, func(t *testing.T) {
			cmd := exec.Command(gobin, "list", "-deps", pkg)
			cmd.Dir = ".."
			out, err := cmd.CombinedOutput()
			require.NoError(t, err, string(out))

			for _, dep := range strings.Fields(string(out)) {
				require.False(t, strings.HasPrefix(dep, "github.com/hajimehoshi/ebiten"),
					"%s depends on %s", pkg, dep)
			}
		})
	}
}
