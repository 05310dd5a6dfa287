package script

import (
	"outfix-be/internal/constant"
	"outfix-be/internal/entity"
)

const maxRecommendations = 3

// BoxDiscovery is the scripted flow for the box-discovery mode. Rules are
// evaluated in order; keep the generic branch last.
func BoxDiscovery() *Script {
	return New([]Rule{
		{
			Name:     "interview",
			Match:    Contains("interview", "professional", "work", "office"),
			Response: constant.InterviewBoxResponse,
			Filter:   categoryFilter(constant.CategoryClassic),
		},
		{
			Name:     "evening",
			Match:    Contains("evening", "party", "night out", "date"),
			Response: constant.EveningBoxResponse,
			Filter:   categoryFilter(constant.CategoryEvening, constant.CategoryBoho),
		},
		{
			Name:     "vintage",
			Match:    Contains("vintage", "retro", "second-hand"),
			Response: constant.VintageBoxResponse,
			Filter:   categoryFilter(constant.CategoryVintage),
		},
		{
			Name:     "default",
			Match:    Any(),
			Response: constant.DefaultBoxResponse,
			Filter:   firstN(maxRecommendations),
		},
	})
}

// OutfitCreation is the scripted flow for the outfit-creation mode: same
// machine shape, but matches produce a structured outfit suggestion from
// the wardrobe instead of a box list.
func OutfitCreation() *Script {
	return New([]Rule{
		{
			Name:     "interview",
			Match:    Contains("interview", "professional", "work", "office"),
			Response: constant.InterviewOutfitResponse,
			Outfit: outfitOf(
				"Job interview",
				[]string{"White shirt", "Black slim jeans", "Denim jacket"},
				"The white shirt is a timeless classic. Black jeans add a modern touch!",
			),
		},
		{
			Name:     "evening",
			Match:    Contains("evening", "party", "night out", "dinner", "date"),
			Response: constant.EveningOutfitResponse,
			Outfit: outfitOf(
				"Evening out",
				[]string{"Black dress", "White sneakers"},
				"A little black dress dressed down with sneakers keeps the look effortless.",
			),
		},
		{
			Name:     "default",
			Match:    Any(),
			Response: constant.DefaultOutfitResponse,
			Outfit: outfitOf(
				"Casual look",
				[]string{"Grey sweater", "Black slim jeans"},
				"Simple and effective!",
			),
		},
	})
}

func categoryFilter(categories ...string) func([]entity.Box) []entity.Box {
	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}
	return func(boxes []entity.Box) []entity.Box {
		out := make([]entity.Box, 0, maxRecommendations)
		for _, box := range boxes {
			if wanted[box.Category] {
				out = append(out, box)
			}
			if len(out) == maxRecommendations {
				break
			}
		}
		return out
	}
}

func firstN(n int) func([]entity.Box) []entity.Box {
	return func(boxes []entity.Box) []entity.Box {
		if len(boxes) > n {
			boxes = boxes[:n]
		}
		out := make([]entity.Box, len(boxes))
		copy(out, boxes)
		return out
	}
}

// outfitOf resolves garment names against the wardrobe; garments missing
// from the wardrobe are skipped rather than invented.
func outfitOf(occasion string, names []string, tips string) func([]entity.WardrobeItem) *entity.OutfitSuggestion {
	return func(wardrobe []entity.WardrobeItem) *entity.OutfitSuggestion {
		byName := make(map[string]entity.WardrobeItem, len(wardrobe))
		for _, item := range wardrobe {
			byName[item.Name] = item
		}

		items := make([]entity.OutfitItem, 0, len(names))
		for _, name := range names {
			if item, ok := byName[name]; ok {
				items = append(items, entity.OutfitItem{
					Name:  item.Name,
					Type:  item.Type,
					Color: item.Color,
				})
			}
		}

		return &entity.OutfitSuggestion{
			Occasion: occasion,
			Items:    items,
			Tips:     tips,
		}
	}
}
