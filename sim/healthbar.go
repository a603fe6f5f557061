package sim

// BarColor is the fill color band of a health bar
type BarColor int

const (
	BarGreen BarColor = iota
	BarYellow
	BarRed
)

func (c BarColor) String() string {
	switch c {
	case BarGreen:
		return "green"
	case BarYellow:
		return "yellow"
	case BarRed:
		return "red"
	}
	return "unknown"
}

// BarColorFor maps a health ratio to its band: above 0.6 green, above 0.3 yellow, else red.
func BarColorFor(ratio float64) BarColor {
	switch {
	case ratio > 0.6:
		return BarGreen
	case ratio > 0.3:
		return BarYellow
	default:
		return BarRed
	}
}

// Visual is a drawn element owned by the core. Presentation draws it while it is live.
type Visual struct {
	live bool
}

// Live reports whether the visual still exists
func (v Visual) Live() bool { return v.live }

func (v *Visual) destroy() bool {
	if !v.live {
		return false
	}
	v.live = false
	return true
}

// HealthBar is a two-part bar drawn above an entity: a fixed-width background and
// a fill scaled by remaining health.
type HealthBar struct {
	Width      float64
	Fill       float64
	Color      BarColor
	Background Visual
	Foreground Visual
}

// NewHealthBar creates a full green bar
func NewHealthBar(width float64) HealthBar {
	return HealthBar{
		Width:      width,
		Fill:       width,
		Color:      BarGreen,
		Background: Visual{live: true},
		Foreground: Visual{live: true},
	}
}

// Sync recomputes fill width and color from the owner's health.
func (b *HealthBar) Sync(health, maxHealth float64) {
	ratio := 0.0
	if maxHealth > 0 {
		ratio = health / maxHealth
	}
	b.Fill = b.Width * clamp(ratio, 0, 1)
	b.Color = BarColorFor(ratio)
}

// Live reports whether either visual is still drawn
func (b HealthBar) Live() bool {
	return b.Background.Live() || b.Foreground.Live()
}

// Destroy removes both visuals and returns how many were still live.
func (b *HealthBar) Destroy() int {
	n := 0
	if b.Background.destroy() {
		n++
	}
	if b.Foreground.destroy() {
		n++
	}
	return n
}
