package service

// Step is one position in a wizard's ordered step list.
type Step string

// stepTracker tracks a wizard's position on its fixed ordered step list plus
// the furthest step ever reached. Progress display reflects work done, not
// just the current position, so the high-water mark is kept separately from
// the step pointer.
type stepTracker struct {
	steps     []Step
	current   int
	highWater int
}

func newStepTracker(steps []Step, start Step) *stepTracker {
	t := &stepTracker{steps: steps}
	t.current = t.indexOf(start)
	t.highWater = t.current
	return t
}

func (t *stepTracker) indexOf(step Step) int {
	for i, s := range t.steps {
		if s == step {
			return i
		}
	}
	return 0
}

// goTo moves the step pointer. Forward moves raise the high-water mark;
// backward moves leave it alone.
func (t *stepTracker) goTo(step Step) {
	t.current = t.indexOf(step)
	if t.current > t.highWater {
		t.highWater = t.current
	}
}

func (t *stepTracker) currentStep() Step {
	return t.steps[t.current]
}

func (t *stepTracker) currentIndex() int {
	return t.current
}

func (t *stepTracker) highWaterIndex() int {
	return t.highWater
}

func (t *stepTracker) stepList() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}
