package script

import (
	"testing"

	"outfix-be/internal/constant"
	"outfix-be/internal/entity"
)

func discoveryBoxes() []entity.Box {
	return []entity.Box{
		{Id: "casual-basics", Category: constant.CategoryCasual},
		{Id: "vintage-treasures", Category: constant.CategoryVintage},
		{Id: "classic-professional", Category: constant.CategoryClassic},
		{Id: "boho-free", Category: constant.CategoryBoho},
		{Id: "evening-glam", Category: constant.CategoryEvening},
	}
}

func TestBoxDiscoveryEval(t *testing.T) {
	s := BoxDiscovery()

	tests := []struct {
		name     string
		input    string
		wantRule string
	}{
		{name: "interview keyword", input: "I have a job interview tomorrow", wantRule: "interview"},
		{name: "matching is case-insensitive", input: "Something PROFESSIONAL please", wantRule: "interview"},
		{name: "evening keyword", input: "going to a party", wantRule: "evening"},
		{name: "vintage keyword", input: "I love retro looks", wantRule: "vintage"},
		{name: "no keyword falls through to default", input: "surprise me", wantRule: "default"},
		{name: "empty input hits default", input: "", wantRule: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := s.Eval(tt.input)
			if rule.Name != tt.wantRule {
				t.Errorf("Eval(%q) = %q, want %q", tt.input, rule.Name, tt.wantRule)
			}
		})
	}
}

// Rules are checked in order; an input matching both interview and evening
// keywords resolves to the earlier rule.
func TestBoxDiscoveryFirstMatchWins(t *testing.T) {
	s := BoxDiscovery()

	rule := s.Eval("interview then a party")
	if rule.Name != "interview" {
		t.Errorf("rule = %q, want interview", rule.Name)
	}
}

func TestBoxDiscoveryFilters(t *testing.T) {
	s := BoxDiscovery()
	boxes := discoveryBoxes()

	t.Run("interview selects classic", func(t *testing.T) {
		recs := s.Eval("interview outfit").Filter(boxes)
		if len(recs) != 1 || recs[0].Id != "classic-professional" {
			t.Errorf("recs = %v", ids(recs))
		}
	})

	t.Run("evening selects evening and boho", func(t *testing.T) {
		recs := s.Eval("date night").Filter(boxes)
		if len(recs) != 2 {
			t.Fatalf("recs = %v", ids(recs))
		}
	})

	t.Run("default caps at three", func(t *testing.T) {
		recs := s.Eval("anything").Filter(boxes)
		if len(recs) != 3 {
			t.Errorf("recs = %v, want first 3", ids(recs))
		}
	})
}

func TestOutfitCreationEval(t *testing.T) {
	s := OutfitCreation()
	wardrobe := []entity.WardrobeItem{
		{Id: "1", Name: "Black slim jeans", Type: "bottom", Color: "black"},
		{Id: "2", Name: "White shirt", Type: "top", Color: "white"},
		{Id: "3", Name: "Grey sweater", Type: "top", Color: "grey"},
		{Id: "4", Name: "Denim jacket", Type: "outer", Color: "blue"},
		{Id: "5", Name: "Black dress", Type: "dress", Color: "black"},
		{Id: "6", Name: "White sneakers", Type: "shoes", Color: "white"},
	}

	t.Run("interview builds the professional look", func(t *testing.T) {
		rule := s.Eval("outfit for work")
		outfit := rule.Outfit(wardrobe)

		if outfit.Occasion != "Job interview" {
			t.Errorf("Occasion = %q", outfit.Occasion)
		}
		if len(outfit.Items) != 3 {
			t.Errorf("Items = %d, want 3", len(outfit.Items))
		}
	})

	t.Run("missing garments are skipped", func(t *testing.T) {
		rule := s.Eval("dinner date")
		outfit := rule.Outfit(wardrobe[:1])

		if len(outfit.Items) != 0 {
			t.Errorf("Items = %d, want none resolvable", len(outfit.Items))
		}
	})

	t.Run("default suggests the casual look", func(t *testing.T) {
		rule := s.Eval("hmm")
		if rule.Name != "default" {
			t.Fatalf("rule = %q", rule.Name)
		}
		outfit := rule.Outfit(wardrobe)
		if outfit.Occasion != "Casual look" {
			t.Errorf("Occasion = %q", outfit.Occasion)
		}
	})
}

func TestContains(t *testing.T) {
	match := Contains("interview", "office")

	if !match("my office party") {
		t.Error("expected match on office")
	}
	if match("casual weekend") {
		t.Error("unexpected match")
	}
}

func ids(boxes []entity.Box) []string {
	out := make([]string, len(boxes))
	for i, b := range boxes {
		out[i] = b.Id
	}
	return out
}
