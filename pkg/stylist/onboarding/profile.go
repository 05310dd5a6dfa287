// Package onboarding drives the three-step preference quiz that precedes
// free-form assistant interaction.
package onboarding

import (
	"errors"
	"math/rand"
	"strings"

	"outfix-be/internal/entity"
)

const (
	StepStyles    = 0
	StepColors    = 1
	StepOccasions = 2
	StepComplete  = 3
)

const (
	DimensionStyles    = "styles"
	DimensionColors    = "colors"
	DimensionOccasions = "occasions"
)

var (
	// ErrEmptySelection blocks advancing a step with nothing selected.
	ErrEmptySelection = errors.New("select at least one option to continue")

	// ErrProfileFrozen rejects mutations once the quiz is complete.
	ErrProfileFrozen = errors.New("style profile is already complete")

	ErrUnknownDimension = errors.New("unknown preference dimension")
)

// Toggle adds the tag to the dimension's selection set, or removes it if
// already present. Rejected once the profile is frozen.
func Toggle(profile *entity.StyleProfile, dimension, tag string) error {
	if Complete(*profile) {
		return ErrProfileFrozen
	}

	switch dimension {
	case DimensionStyles:
		profile.Styles = toggleTag(profile.Styles, tag)
	case DimensionColors:
		profile.Colors = toggleTag(profile.Colors, tag)
	case DimensionOccasions:
		profile.Occasions = toggleTag(profile.Occasions, tag)
	default:
		return ErrUnknownDimension
	}
	return nil
}

// Advance moves to the next step. The active step's selection set must be
// non-empty; on violation the step counter is left unchanged.
func Advance(profile *entity.StyleProfile) error {
	switch profile.CurrentStep {
	case StepStyles:
		if len(profile.Styles) == 0 {
			return ErrEmptySelection
		}
	case StepColors:
		if len(profile.Colors) == 0 {
			return ErrEmptySelection
		}
	case StepOccasions:
		if len(profile.Occasions) == 0 {
			return ErrEmptySelection
		}
	default:
		return ErrProfileFrozen
	}
	profile.CurrentStep++
	return nil
}

func Complete(profile entity.StyleProfile) bool {
	return profile.CurrentStep >= StepComplete
}

// Recommend computes the initial recommendation set from a frozen profile:
// boxes whose category or tags intersect the chosen style tags, union'd
// with one random fallback box for variety. Non-empty for any non-empty
// catalog. pick selects the fallback index and is injectable for tests;
// nil uses math/rand.
func Recommend(profile entity.StyleProfile, boxes []entity.Box, pick func(n int) int) []entity.Box {
	if pick == nil {
		pick = rand.Intn
	}

	matched := make([]entity.Box, 0)
	seen := make(map[string]bool)
	for _, box := range boxes {
		if matchesProfile(box, profile.Styles) {
			matched = append(matched, box)
			seen[box.Id] = true
		}
	}

	if len(boxes) > 0 {
		fallback := boxes[pick(len(boxes))]
		if !seen[fallback.Id] {
			matched = append(matched, fallback)
		}
	}

	return matched
}

func matchesProfile(box entity.Box, styles []string) bool {
	for _, style := range styles {
		if strings.EqualFold(box.Category, style) {
			return true
		}
		for _, tag := range box.Tags {
			if strings.EqualFold(tag, style) {
				return true
			}
		}
	}
	return false
}

func toggleTag(tags []string, tag string) []string {
	for i, t := range tags {
		if t == tag {
			return append(tags[:i], tags[i+1:]...)
		}
	}
	return append(tags, tag)
}
