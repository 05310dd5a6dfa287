package catalog

import (
	"testing"

	"outfix-be/internal/constant"
	"outfix-be/internal/entity"
)

func fixtureBoxes() []entity.Box {
	return []entity.Box{
		{Id: "a", Category: constant.CategoryCasual, Price: 49.99, Rating: 4.8, Reviews: 234},
		{Id: "b", Category: constant.CategoryVintage, Price: 59.99, Rating: 4.9, Reviews: 189},
		{Id: "c", Category: constant.CategoryUrban, Price: 54.99, Rating: 4.7, Reviews: 156},
		{Id: "d", Category: constant.CategoryCasual, Price: 49.99, Rating: 4.8, Reviews: 98},
	}
}

func TestSortBoxes(t *testing.T) {
	tests := []struct {
		name      string
		criterion string
		wantOrder []string
	}{
		{
			name:      "popular is default",
			criterion: "",
			wantOrder: []string{"a", "b", "c", "d"},
		},
		{
			name:      "price ascending keeps ties in input order",
			criterion: constant.SortPriceAsc,
			wantOrder: []string{"a", "d", "c", "b"},
		},
		{
			name:      "price descending",
			criterion: constant.SortPriceDesc,
			wantOrder: []string{"b", "c", "a", "d"},
		},
		{
			name:      "rating descending keeps ties in input order",
			criterion: constant.SortRating,
			wantOrder: []string{"b", "a", "d", "c"},
		},
		{
			name:      "unknown criterion falls back to popularity",
			criterion: "newest",
			wantOrder: []string{"a", "b", "c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortBoxes(fixtureBoxes(), tt.criterion)

			if len(got) != len(tt.wantOrder) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantOrder))
			}
			for i, id := range tt.wantOrder {
				if got[i].Id != id {
					t.Errorf("position %d = %q, want %q", i, got[i].Id, id)
				}
			}
		})
	}
}

func TestSortBoxesDoesNotMutateInput(t *testing.T) {
	boxes := fixtureBoxes()
	SortBoxes(boxes, constant.SortPriceDesc)

	if boxes[0].Id != "a" || boxes[3].Id != "d" {
		t.Errorf("input order changed: %q ... %q", boxes[0].Id, boxes[3].Id)
	}
}

func TestFilterByCategory(t *testing.T) {
	boxes := fixtureBoxes()

	t.Run("all sentinel returns full list", func(t *testing.T) {
		got := FilterByCategory(boxes, constant.CategoryAll)
		if len(got) != len(boxes) {
			t.Fatalf("len = %d, want %d", len(got), len(boxes))
		}
		for i := range boxes {
			if got[i].Id != boxes[i].Id {
				t.Errorf("position %d = %q, want %q", i, got[i].Id, boxes[i].Id)
			}
		}
	})

	t.Run("empty category behaves like all", func(t *testing.T) {
		if got := FilterByCategory(boxes, ""); len(got) != len(boxes) {
			t.Errorf("len = %d, want %d", len(got), len(boxes))
		}
	})

	t.Run("specific category matches exactly", func(t *testing.T) {
		got := FilterByCategory(boxes, constant.CategoryCasual)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		for _, box := range got {
			if box.Category != constant.CategoryCasual {
				t.Errorf("box %q has category %q", box.Id, box.Category)
			}
		}
	})

	t.Run("unknown category yields empty", func(t *testing.T) {
		if got := FilterByCategory(boxes, "Nautical"); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}

// Every box lands in exactly one category bucket, so filtering by each
// category and summing covers the whole catalog.
func TestFilterByCategoryPartitionsCatalog(t *testing.T) {
	boxes := fixtureBoxes()

	total := 0
	for _, category := range constant.Categories {
		if category == constant.CategoryAll {
			continue
		}
		total += len(FilterByCategory(boxes, category))
	}

	if total != len(boxes) {
		t.Errorf("partition sum = %d, want %d", total, len(boxes))
	}
}
