package client

// Picker tracks a capped set of active selections. A toggle beyond the cap is
// rejected, so earlier selections always win over later ones.
type Picker struct {
	max      int
	selected []string
}

func NewPicker(max int) *Picker {
	return &Picker{max: max}
}

// Toggle flips the selection state of an option. It reports false when the
// option was a new selection over the cap, leaving the active set unchanged.
func (p *Picker) Toggle(option string) bool {
	for i, s := range p.selected {
		if s == option {
			p.selected = append(p.selected[:i], p.selected[i+1:]...)
			return true
		}
	}

	if len(p.selected) >= p.max {
		return false
	}

	p.selected = append(p.selected, option)
	return true
}

// Selected returns the active selections in the order they were made.
func (p *Picker) Selected() []string {
	out := make([]string, len(p.selected))
	copy(out, p.selected)
	return out
}

func (p *Picker) Clear() {
	p.selected = nil
}
