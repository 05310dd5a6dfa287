// Package script implements the assistant's scripted dialogue as a
// data-driven rule list: ordered (predicate, response template, selection)
// tuples evaluated first-match-wins, with a mandatory default branch so
// matching never fails.
package script

import (
	"strings"

	"outfix-be/internal/entity"
)

// Rule pairs a keyword predicate with a canned reply. Exactly one of
// Filter (box discovery) or Outfit (outfit creation) is set per script.
type Rule struct {
	Name     string
	Match    func(input string) bool
	Response string
	Filter   func(boxes []entity.Box) []entity.Box
	Outfit   func(wardrobe []entity.WardrobeItem) *entity.OutfitSuggestion
}

// Script is an ordered rule list whose final rule matches any input.
type Script struct {
	rules []Rule
}

// New builds a script. The last rule is treated as the default branch and
// its predicate is ignored.
func New(rules []Rule) *Script {
	return &Script{rules: rules}
}

// Eval returns the first rule matching the input. The trailing default rule
// guarantees a result for every input.
func (s *Script) Eval(input string) Rule {
	lowered := strings.ToLower(input)
	for i, rule := range s.rules {
		if i == len(s.rules)-1 {
			break
		}
		if rule.Match(lowered) {
			return rule
		}
	}
	return s.rules[len(s.rules)-1]
}

// Contains builds a predicate matching any of the given substrings against
// the lower-cased input.
func Contains(keywords ...string) func(string) bool {
	return func(input string) bool {
		for _, kw := range keywords {
			if strings.Contains(input, kw) {
				return true
			}
		}
		return false
	}
}

// Any matches every input. Used for default branches.
func Any() func(string) bool {
	return func(string) bool { return true }
}
