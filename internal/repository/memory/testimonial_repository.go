package memory

import (
	"outfix-be/internal/entity"
	"outfix-be/internal/repository/contract"
)

type TestimonialRepository struct {
	testimonials []entity.Testimonial
}

var _ contract.TestimonialRepository = &TestimonialRepository{}

func NewTestimonialRepository() *TestimonialRepository {
	return &TestimonialRepository{testimonials: seedTestimonials()}
}

func (r *TestimonialRepository) GetAll() []entity.Testimonial {
	out := make([]entity.Testimonial, len(r.testimonials))
	copy(out, r.testimonials)
	return out
}

func seedTestimonials() []entity.Testimonial {
	return []entity.Testimonial{
		{
			Id:           1,
			Name:         "Marie L.",
			Avatar:       "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100",
			Text:         "I love the concept! Every box is a real surprise and the clothes are always great quality. The AI assistant really understood my style.",
			Rating:       5,
			BoxPurchased: "Vintage Revival",
		},
		{
			Id:           2,
			Name:         "Sophie M.",
			Avatar:       "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100",
			Text:         "Sustainable fashion made easy! The quality exceeds my expectations every time. Plus, knowing I'm helping the environment makes it even better.",
			Rating:       5,
			BoxPurchased: "Minimal Capsule",
		},
		{
			Id:           3,
			Name:         "Lucas D.",
			Avatar:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100",
			Text:         "Finally, a subscription that gets my style. The AI stylist recommended the Urban Street box and it was perfect. Already on my third month!",
			Rating:       5,
			BoxPurchased: "Urban Street",
		},
		{
			Id:           4,
			Name:         "Emma R.",
			Avatar:       "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100",
			Text:         "The gamification aspect keeps me engaged and the rewards are actually useful. Love earning style points while building a sustainable wardrobe!",
			Rating:       4,
			BoxPurchased: "Bohemian Spirit",
		},
	}
}
