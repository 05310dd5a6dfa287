package mapper

import (
	"outfix-be/internal/dto"
	"outfix-be/internal/entity"
)

func ToBoxResponse(box entity.Box) dto.BoxResponse {
	return dto.BoxResponse{
		Id:              box.Id,
		Name:            box.Name,
		Category:        box.Category,
		Description:     box.Description,
		LongDescription: box.LongDescription,
		Price:           box.Price,
		OriginalValue:   box.OriginalValue,
		Items:           box.Items,
		Images:          box.Images,
		Tags:            box.Tags,
		Rating:          box.Rating,
		Reviews:         box.Reviews,
		Sustainability: dto.SustainabilityResponse{
			Co2Saved:     box.Sustainability.Co2Saved,
			WaterSaved:   box.Sustainability.WaterSaved,
			WasteReduced: box.Sustainability.WasteReduced,
		},
	}
}

func ToBoxResponses(boxes []entity.Box) []dto.BoxResponse {
	out := make([]dto.BoxResponse, len(boxes))
	for i, box := range boxes {
		out[i] = ToBoxResponse(box)
	}
	return out
}

func ToTestimonialResponses(testimonials []entity.Testimonial) []dto.TestimonialResponse {
	out := make([]dto.TestimonialResponse, len(testimonials))
	for i, t := range testimonials {
		out[i] = dto.TestimonialResponse{
			Id:           t.Id,
			Name:         t.Name,
			Avatar:       t.Avatar,
			Text:         t.Text,
			Rating:       t.Rating,
			BoxPurchased: t.BoxPurchased,
		}
	}
	return out
}
