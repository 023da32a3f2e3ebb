package model

// Team is a named group assembled by a balancing strategy. It holds
// member references only; players are shared across the whole run and
// outlive the team. All statistics are recomputed on demand, so a team
// never goes stale after a membership change.
type Team struct {
	ID      string
	Name    string
	Players []*Player
}

// Size returns the current member count.
func (t *Team) Size() int {
	return len(t.Players)
}

// MeanSpeed returns the mean speed rating across members, 0 when empty.
func (t *Team) MeanSpeed() float64 {
	return t.mean(func(p *Player) float64 { return float64(p.Speed) })
}

// MeanTechnical returns the mean technical rating across members, 0 when empty.
func (t *Team) MeanTechnical() float64 {
	return t.mean(func(p *Player) float64 { return float64(p.Technical) })
}

// MeanStamina returns the mean stamina rating across members, 0 when empty.
func (t *Team) MeanStamina() float64 {
	return t.mean(func(p *Player) float64 { return float64(p.Stamina) })
}

// MeanOverall returns the mean overall rating across members, 0 when empty.
func (t *Team) MeanOverall() float64 {
	return t.mean(func(p *Player) float64 { return p.Overall() })
}

func (t *Team) mean(value func(*Player) float64) float64 {
	if len(t.Players) == 0 {
		return 0
	}
	var sum float64
	for _, p := range t.Players {
		sum += value(p)
	}
	return sum / float64(len(t.Players))
}
