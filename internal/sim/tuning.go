package sim

const (
	DefaultSpeed           = 5.0
	DefaultMouthSpeed      = 0.2
	DefaultMaxMouthAngle   = 1.0 // about 57 degrees
	DefaultCollectFraction = 0.5
	DefaultDotPoints       = 10
	playerSizeFraction     = 0.8
)

// Tuning holds the per-tick constants of the simulation.
type Tuning struct {
	Speed           float64 // pixels per tick
	MouthSpeed      float64 // radians per tick
	MaxMouthAngle   float64
	CollectFraction float64 // of the cell size
	DotPoints       int
}

func DefaultTuning() Tuning {
	return Tuning{
		Speed:           DefaultSpeed,
		MouthSpeed:      DefaultMouthSpeed,
		MaxMouthAngle:   DefaultMaxMouthAngle,
		CollectFraction: DefaultCollectFraction,
		DotPoints:       DefaultDotPoints,
	}
}
