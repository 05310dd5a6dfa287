package contract

import "outfix-be/internal/entity"

// BoxRepository serves the static box catalog. Implementations return
// copies; the catalog itself is immutable for the process lifetime.
type BoxRepository interface {
	GetAll() []entity.Box
	GetById(id string) (*entity.Box, bool)
	FilterByCategory(category string) []entity.Box
	Categories() []string
}

type WardrobeRepository interface {
	GetAll() []entity.WardrobeItem
}

type TestimonialRepository interface {
	GetAll() []entity.Testimonial
}
