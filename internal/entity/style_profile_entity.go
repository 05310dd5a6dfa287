package entity

// StyleProfile accumulates the onboarding selections. CurrentStep runs
// 0 (styles) → 1 (colors) → 2 (occasions) → 3 (complete); each step must
// have a non-empty selection before advancing, and the profile is frozen
// once complete.
type StyleProfile struct {
	Styles      []string `json:"styles"`
	Colors      []string `json:"colors"`
	Occasions   []string `json:"occasions"`
	CurrentStep int      `json:"current_step"`
}
