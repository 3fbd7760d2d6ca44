package aureole

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsRefresh is how often the FPS text is rebuilt, in seconds.
const fpsRefresh = 0.5

// fpsCounter caches the FPS/TPS footer text so it is only formatted every
// fpsRefresh seconds.
type fpsCounter struct {
	elapsed float64
	text    string
}

func (f *fpsCounter) update(dt float64) {
	f.elapsed += dt
	if f.text != "" && f.elapsed < fpsRefresh {
		return
	}
	f.elapsed = 0
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}
