package animation

import "time"

// FadeController animates a value between 0 and 1 over a fixed duration.
// It drives the scroll indicator's show/hide transitions.
type FadeController struct {
	// Duration is the time a full 0→1 transition takes.
	Duration time.Duration

	value     float64
	target    float64
	ticker    *Ticker
	lastTick  time.Duration
	listeners []func()
}

// NewFadeController creates a controller at value 0.
func NewFadeController(duration time.Duration) *FadeController {
	c := &FadeController{Duration: duration}
	c.ticker = NewTicker(c.tick)
	return c
}

// Value returns the current animation value in [0, 1].
func (c *FadeController) Value() float64 {
	return c.value
}

// IsAnimating reports whether a transition is in progress.
func (c *FadeController) IsAnimating() bool {
	return c.ticker.IsActive()
}

// AddListener registers a callback invoked on every value change.
// Returns an unregister function.
func (c *FadeController) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	index := len(c.listeners)
	c.listeners = append(c.listeners, listener)
	return func() {
		if index < len(c.listeners) {
			c.listeners[index] = nil
		}
	}
}

// Forward animates toward 1.
func (c *FadeController) Forward() {
	c.animateTo(1)
}

// Reverse animates toward 0.
func (c *FadeController) Reverse() {
	c.animateTo(0)
}

// Snap jumps immediately to the target without animating.
func (c *FadeController) Snap(target float64) {
	c.ticker.Stop()
	if target < 0 {
		target = 0
	}
	if target > 1 {
		target = 1
	}
	if c.value == target {
		return
	}
	c.value = target
	c.target = target
	c.notify()
}

// Dispose stops any running animation.
func (c *FadeController) Dispose() {
	c.ticker.Stop()
	c.listeners = nil
}

func (c *FadeController) animateTo(target float64) {
	c.target = target
	if c.value == target {
		c.ticker.Stop()
		return
	}
	if c.Duration <= 0 {
		c.Snap(target)
		return
	}
	if !c.ticker.IsActive() {
		c.lastTick = 0
		c.ticker.Start()
	}
}

func (c *FadeController) tick(elapsed time.Duration) {
	dt := elapsed - c.lastTick
	c.lastTick = elapsed
	if dt <= 0 {
		return
	}
	step := float64(dt) / float64(c.Duration)
	if c.value < c.target {
		c.value += step
		if c.value >= c.target {
			c.value = c.target
		}
	} else {
		c.value -= step
		if c.value <= c.target {
			c.value = c.target
		}
	}
	if c.value == c.target {
		c.ticker.Stop()
	}
	c.notify()
}

func (c *FadeController) notify() {
	for _, listener := range c.listeners {
		if listener != nil {
			listener()
		}
	}
}
