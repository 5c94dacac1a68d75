package cylinder

import "math"

const (
	// DefaultStep is how far the displayed extension moves per frame.
	DefaultStep = 4.0

	// DefaultMaxStrokePx is the on-screen stroke of the moving plate.
	DefaultMaxStrokePx = 120.0

	minExtension = 0.0
	maxExtension = 100.0
)

// State holds the commanded position of the cylinder and the extension
// currently on display. Only Step moves the displayed extension.
type State struct {
	extended  bool
	extension float64
	step      float64
}

// New returns a retracted cylinder that advances step units per frame.
// A non-positive step falls back to DefaultStep.
func New(step float64) State {
	if step <= 0 {
		step = DefaultStep
	}
	return State{step: step}
}

// Extended reports the commanded state.
func (s *State) Extended() bool { return s.extended }

// Extension returns the displayed extension in [0,100].
func (s *State) Extension() float64 { return s.extension }

// StepSize returns the per-frame step.
func (s *State) StepSize() float64 {
	if s.step <= 0 {
		return DefaultStep
	}
	return s.step
}

// Target is where the displayed extension is heading.
func (s *State) Target() float64 {
	if s.extended {
		return maxExtension
	}
	return minExtension
}

// Settled reports whether the displayed extension has reached the target.
func (s *State) Settled() bool {
	return s.extension == s.Target()
}

// Step advances the displayed extension by one frame. The last step snaps
// onto the target so the value never overshoots.
func (s *State) Step() {
	target := s.Target()
	diff := target - s.extension
	step := s.StepSize()

	if math.Abs(diff) < step {
		s.extension = target
		return
	}
	if diff > 0 {
		s.extension += step
	} else {
		s.extension -= step
	}
}

// CommandExtend sets the commanded state to extended.
func (s *State) CommandExtend() { s.extended = true }

// CommandRetract sets the commanded state to retracted.
func (s *State) CommandRetract() { s.extended = false }

// Toggle flips the commanded state.
func (s *State) Toggle() { s.extended = !s.extended }

// CanExtend reports whether an extend command would change anything.
func (s *State) CanExtend() bool { return !s.extended }

// CanRetract reports whether a retract command would change anything.
func (s *State) CanRetract() bool { return s.extended }
