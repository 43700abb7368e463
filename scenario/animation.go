package scenario

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inOutCubic":   ease.InOutCubic,
	"inOutSine":    ease.InOutSine,
	"outBounce":    ease.OutBounce,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
}

func (anim Animation) easeName() string {
	if anim.Ease == "" {
		return "linear"
	}
	return anim.Ease
}

// Animator plays a Scenario's Animations, producing the scalar overrides to evaluate it with each frame.
type Animator struct {
	tracks []*track
}

type track struct {
	anim     Animation
	tween    *gween.Tween
	forward  bool
	current  float32
	finished bool
}

func (t *track) start() {
	from, to := t.anim.From, t.anim.To
	if !t.forward {
		from, to = to, from
	}
	t.tween = gween.New(from, to, t.anim.Seconds, easings[t.anim.easeName()])
	t.current = from
	t.finished = false
}

// NewAnimator creates an Animator for the Scenario's Animations, positioned at their start.
func NewAnimator(sc *Scenario) *Animator {
	animator := &Animator{}
	for _, anim := range sc.Animate {
		t := &track{anim: anim, forward: true}
		t.start()
		animator.tracks = append(animator.tracks, t)
	}
	return animator
}

// Animated returns if there is anything to animate at all.
func (a *Animator) Animated() bool {
	return len(a.tracks) > 0
}

// Update advances every Animation by dt seconds. Yoyo animations turn around at either end; the rest hold their
// final value once finished.
func (a *Animator) Update(dt float32) {

	for _, t := range a.tracks {

		if t.finished {
			continue
		}

		current, finished := t.tween.Update(dt)
		t.current = current

		if finished {
			if t.anim.Yoyo {
				t.forward = !t.forward
				t.start()
			} else {
				t.finished = true
			}
		}

	}

}

// Reset puts every Animation back at its start.
func (a *Animator) Reset() {
	for _, t := range a.tracks {
		t.forward = true
		t.start()
	}
}

// Values returns the current value of each animated scalar, ready to pass to Evaluator.Evaluate.
func (a *Animator) Values() map[string]float32 {
	if len(a.tracks) == 0 {
		return nil
	}
	values := make(map[string]float32, len(a.tracks))
	for _, t := range a.tracks {
		values[t.anim.Scalar] = t.current
	}
	return values
}
