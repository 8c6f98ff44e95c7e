package component

// HealthComponent tracks hit points
// Current may go negative before death processing; death is Current < 1
type HealthComponent struct {
	Current int
	Max     int
}

// Dead reports whether hit points are exhausted
func (h HealthComponent) Dead() bool {
	return h.Current < 1
}

// Heal raises Current by amount, clamped to Max
func (h HealthComponent) Heal(amount int) HealthComponent {
	h.Current = min(h.Current+amount, h.Max)
	return h
}
