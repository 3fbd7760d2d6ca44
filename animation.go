package aureole

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// panelSlideDuration is how long the panel takes to slide in or out, in
// seconds.
const panelSlideDuration = 0.3

// slideAnim tweens a single offset. There is no global animation manager;
// owners call update themselves each frame.
type slideAnim struct {
	tween *gween.Tween
}

func newSlideAnim(from, to float64, duration float32) *slideAnim {
	return &slideAnim{tween: gween.New(float32(from), float32(to), duration, ease.OutCubic)}
}

// update advances by dt seconds and returns the current value and whether
// the tween finished.
func (a *slideAnim) update(dt float32) (float64, bool) {
	v, done := a.tween.Update(dt)
	return float64(v), done
}
