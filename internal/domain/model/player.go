// Package model contains domain models passed between layers.
package model

// Player represents a rated participant entering a balancing run.
// Skill attributes are integers in [1,3], validated by the roster
// validator before they reach the balancing core; strategies treat a
// Player as read-only for the duration of a run.
type Player struct {
	ID        string // unique id, opaque to the core
	Name      string // display name, validated externally
	Speed     int
	Technical int
	Stamina   int
}

// Overall is the arithmetic mean of the three rated attributes.
// It is derived on every call and never stored.
func (p *Player) Overall() float64 {
	return float64(p.Speed+p.Technical+p.Stamina) / 3.0
}
