package catalog

import (
	"sort"

	"outfix-be/internal/constant"
	"outfix-be/internal/entity"
)

// SortBoxes returns a new slice ordered by the given criterion. The sort is
// stable so boxes with equal keys keep their original relative order, and
// the input slice is never mutated. Unknown criteria fall back to
// popularity (descending review count).
func SortBoxes(boxes []entity.Box, criterion string) []entity.Box {
	out := make([]entity.Box, len(boxes))
	copy(out, boxes)

	switch criterion {
	case constant.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case constant.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case constant.SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Reviews > out[j].Reviews })
	}

	return out
}

// FilterByCategory returns the boxes whose category equals the argument.
// The "All" sentinel (or an empty category) bypasses filtering and returns
// a copy of the full list in its original order.
func FilterByCategory(boxes []entity.Box, category string) []entity.Box {
	if category == "" || category == constant.CategoryAll {
		out := make([]entity.Box, len(boxes))
		copy(out, boxes)
		return out
	}

	out := make([]entity.Box, 0)
	for _, box := range boxes {
		if box.Category == category {
			out = append(out, box)
		}
	}
	return out
}
