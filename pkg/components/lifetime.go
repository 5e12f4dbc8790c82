package components

// LifetimeComponent expires an entity after MaxLifetime seconds.
// Used for burst confetti.
type LifetimeComponent struct {
	MaxLifetime     float64 // seconds
	CurrentLifetime float64 // seconds
	IsExpired       bool
}
