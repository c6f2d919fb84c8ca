package statusbar

import "fmt"

// Zoom defaults.
const (
	DefaultZoomMin     = 10
	DefaultZoomMax     = 500
	DefaultZoomStep    = 10
	DefaultZoomRestore = 100
)

// Zoom is a percentage zoom level that moves in fixed steps within bounds.
type Zoom struct {
	level   int
	min     int
	max     int
	step    int
	restore int
}

// NewZoom creates a zoom at the restore level.
func NewZoom(lo, hi, step, restore int) (*Zoom, error) {
	z := &Zoom{level: restore}
	if err := z.SetBounds(lo, hi, step, restore); err != nil {
		return nil, err
	}
	return z, nil
}

// DefaultZoom returns a zoom with the default bounds.
func DefaultZoom() *Zoom {
	z, _ := NewZoom(DefaultZoomMin, DefaultZoomMax, DefaultZoomStep, DefaultZoomRestore)
	return z
}

// SetBounds changes the limits. The current level is clamped to them.
func (z *Zoom) SetBounds(lo, hi, step, restore int) error {
	if lo <= 0 || lo > hi || step <= 0 {
		return fmt.Errorf("%w: min=%d max=%d step=%d", ErrInvalidZoomBounds, lo, hi, step)
	}
	if restore < lo || restore > hi {
		return fmt.Errorf("%w: restore %d not in [%d, %d]", ErrZoomOutOfRange, restore, lo, hi)
	}
	z.min, z.max, z.step, z.restore = lo, hi, step, restore
	z.level = max(lo, min(z.level, hi))
	return nil
}

// Level returns the current zoom percentage.
func (z *Zoom) Level() int { return z.level }

// Bounds returns the inclusive zoom limits.
func (z *Zoom) Bounds() (lo, hi int) { return z.min, z.max }

// Set validates and applies level.
func (z *Zoom) Set(level int) error {
	if level < z.min || level > z.max {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrZoomOutOfRange, level, z.min, z.max)
	}
	z.level = level
	return nil
}

// In increases the zoom by one step.
func (z *Zoom) In() error { return z.Set(z.level + z.step) }

// Out decreases the zoom by one step.
func (z *Zoom) Out() error { return z.Set(z.level - z.step) }

// Restore returns to the restore level.
func (z *Zoom) Restore() error { return z.Set(z.restore) }

// Label formats the level as "NN%".
func (z *Zoom) Label() string {
	return fmt.Sprintf("%d%%", z.level)
}
