package service

import (
	"context"

	"outfix-be/internal/dto"
	"outfix-be/internal/mapper"
	"outfix-be/internal/repository/contract"
	"outfix-be/pkg/catalog"
)

type ICatalogService interface {
	ListBoxes(ctx context.Context, category, sortOption string) ([]dto.BoxResponse, error)
	ShowBox(ctx context.Context, id string) (*dto.BoxResponse, error)
	Categories(ctx context.Context) ([]string, error)
	Testimonials(ctx context.Context) ([]dto.TestimonialResponse, error)
}

type catalogService struct {
	boxRepo         contract.BoxRepository
	testimonialRepo contract.TestimonialRepository
}

func NewCatalogService(
	boxRepo contract.BoxRepository,
	testimonialRepo contract.TestimonialRepository,
) ICatalogService {
	return &catalogService{
		boxRepo:         boxRepo,
		testimonialRepo: testimonialRepo,
	}
}

func (cs *catalogService) ListBoxes(ctx context.Context, category, sortOption string) ([]dto.BoxResponse, error) {
	boxes := cs.boxRepo.FilterByCategory(category)
	boxes = catalog.SortBoxes(boxes, sortOption)
	return mapper.ToBoxResponses(boxes), nil
}

func (cs *catalogService) ShowBox(ctx context.Context, id string) (*dto.BoxResponse, error) {
	box, ok := cs.boxRepo.GetById(id)
	if !ok {
		return nil, dto.ErrBoxNotFound
	}
	res := mapper.ToBoxResponse(*box)
	return &res, nil
}

func (cs *catalogService) Categories(ctx context.Context) ([]string, error) {
	return cs.boxRepo.Categories(), nil
}

func (cs *catalogService) Testimonials(ctx context.Context) ([]dto.TestimonialResponse, error) {
	return mapper.ToTestimonialResponses(cs.testimonialRepo.GetAll()), nil
}
