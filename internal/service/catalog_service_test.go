package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"outfix-be/internal/constant"
	"outfix-be/internal/dto"
	"outfix-be/internal/repository/memory"
)

func newTestCatalog() ICatalogService {
	return NewCatalogService(memory.NewBoxRepository(), memory.NewTestimonialRepository())
}

func TestListBoxesFilterAndSort(t *testing.T) {
	svc := newTestCatalog()
	ctx := context.Background()

	t.Run("all boxes sorted by price ascending", func(t *testing.T) {
		boxes, err := svc.ListBoxes(ctx, constant.CategoryAll, constant.SortPriceAsc)
		assert.NoError(t, err)
		assert.Len(t, boxes, 8)
		for i := 1; i < len(boxes); i++ {
			assert.LessOrEqual(t, boxes[i-1].Price, boxes[i].Price)
		}
	})

	t.Run("category filter narrows the list", func(t *testing.T) {
		boxes, err := svc.ListBoxes(ctx, constant.CategoryVintage, "")
		assert.NoError(t, err)
		assert.NotEmpty(t, boxes)
		for _, box := range boxes {
			assert.Equal(t, constant.CategoryVintage, box.Category)
		}
	})

	t.Run("default sort is popularity", func(t *testing.T) {
		boxes, err := svc.ListBoxes(ctx, "", "")
		assert.NoError(t, err)
		for i := 1; i < len(boxes); i++ {
			assert.GreaterOrEqual(t, boxes[i-1].Reviews, boxes[i].Reviews)
		}
	})
}

func TestShowBox(t *testing.T) {
	svc := newTestCatalog()

	box, err := svc.ShowBox(context.Background(), "evening-glam")
	assert.NoError(t, err)
	assert.Equal(t, constant.CategoryEvening, box.Category)

	_, err = svc.ShowBox(context.Background(), "missing")
	assert.ErrorIs(t, err, dto.ErrBoxNotFound)
}

func TestCategoriesIncludeAllSentinelFirst(t *testing.T) {
	svc := newTestCatalog()

	categories, err := svc.Categories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, constant.CategoryAll, categories[0])
}

func TestTestimonials(t *testing.T) {
	svc := newTestCatalog()

	testimonials, err := svc.Testimonials(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, testimonials)
}
