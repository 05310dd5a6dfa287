package memory

import (
	"outfix-be/internal/constant"
	"outfix-be/internal/entity"
	"outfix-be/internal/repository/contract"
	"outfix-be/pkg/catalog"
)

// BoxRepository holds the version-controlled box catalog. The data is a
// load-time constant, never created, updated or deleted at runtime.
type BoxRepository struct {
	boxes []entity.Box
}

var _ contract.BoxRepository = &BoxRepository{}

func NewBoxRepository() *BoxRepository {
	return &BoxRepository{boxes: seedBoxes()}
}

func (r *BoxRepository) GetAll() []entity.Box {
	out := make([]entity.Box, len(r.boxes))
	copy(out, r.boxes)
	return out
}

func (r *BoxRepository) GetById(id string) (*entity.Box, bool) {
	for _, box := range r.boxes {
		if box.Id == id {
			b := box
			return &b, true
		}
	}
	return nil, false
}

func (r *BoxRepository) FilterByCategory(category string) []entity.Box {
	return catalog.FilterByCategory(r.boxes, category)
}

func (r *BoxRepository) Categories() []string {
	out := make([]string, len(constant.Categories))
	copy(out, constant.Categories)
	return out
}

func seedBoxes() []entity.Box {
	return []entity.Box{
		{
			Id:              "casual-basics",
			Name:            "Casual Essentials",
			Category:        constant.CategoryCasual,
			Description:     "Everyday comfort meets timeless style",
			LongDescription: "Curated basics that form the foundation of any wardrobe. Soft tees, perfect-fit jeans, and versatile layering pieces selected for comfort and durability.",
			Price:           49.99,
			OriginalValue:   280,
			Items:           5,
			Images: []string{
				"https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=600",
				"https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=600",
				"https://images.unsplash.com/photo-1525507119028-ed4c629a60a3?w=600",
			},
			Tags:    []string{"everyday", "comfortable", "basics", "neutral"},
			Rating:  4.8,
			Reviews: 234,
			Sustainability: entity.Sustainability{
				Co2Saved:     "12kg",
				WaterSaved:   "8,000L",
				WasteReduced: "3kg",
			},
		},
		{
			Id:              "vintage-treasures",
			Name:            "Vintage Revival",
			Category:        constant.CategoryVintage,
			Description:     "Unique finds from the 70s, 80s & 90s",
			LongDescription: "Hand-picked vintage pieces with authentic character. From retro band tees to classic denim jackets, each item tells a story and adds personality to your look.",
			Price:           69.99,
			OriginalValue:   400,
			Items:           4,
			Images: []string{
				"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=600",
				"https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3?w=600",
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=600",
			},
			Tags:    []string{"retro", "unique", "statement", "authentic"},
			Rating:  4.9,
			Reviews: 189,
			Sustainability: entity.Sustainability{
				Co2Saved:     "18kg",
				WaterSaved:   "12,000L",
				WasteReduced: "4kg",
			},
		},
		{
			Id:              "urban-street",
			Name:            "Urban Street",
			Category:        constant.CategoryUrban,
			Description:     "Street-smart style for city life",
			LongDescription: "Contemporary streetwear meets sustainability. Graphic hoodies, cargo pants, and sneaker-ready pieces that keep you looking fresh from day to night.",
			Price:           59.99,
			OriginalValue:   320,
			Items:           5,
			Images: []string{
				"https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=600",
				"https://images.unsplash.com/photo-1552374196-1ab2a1c593e8?w=600",
				"https://images.unsplash.com/photo-1509631179647-0177331693ae?w=600",
			},
			Tags:    []string{"streetwear", "trendy", "bold", "city"},
			Rating:  4.7,
			Reviews: 312,
			Sustainability: entity.Sustainability{
				Co2Saved:     "14kg",
				WaterSaved:   "9,500L",
				WasteReduced: "3.5kg",
			},
		},
		{
			Id:              "classic-professional",
			Name:            "Classic Pro",
			Category:        constant.CategoryClassic,
			Description:     "Elevated essentials for the modern professional",
			LongDescription: "Sophisticated pre-loved pieces for the workplace. Blazers, tailored trousers, and quality blouses that command respect while respecting the planet.",
			Price:           65.99,
			OriginalValue:   520,
			Items:           4,
			Images: []string{
				"https://images.unsplash.com/photo-1487222477894-8943e31ef7b2?w=600",
				"https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=600",
				"https://images.unsplash.com/photo-1591369822096-ffd140ec948f?w=600",
			},
			Tags:    []string{"professional", "elegant", "timeless", "quality"},
			Rating:  4.9,
			Reviews: 167,
			Sustainability: entity.Sustainability{
				Co2Saved:     "22kg",
				WaterSaved:   "15,000L",
				WasteReduced: "5kg",
			},
		},
		{
			Id:              "boho-free",
			Name:            "Bohemian Spirit",
			Category:        constant.CategoryBoho,
			Description:     "Free-spirited pieces for the creative soul",
			LongDescription: "Flowing fabrics, earthy tones, and artisanal details. Perfect for those who express themselves through layered, textured, and uniquely styled outfits.",
			Price:           54.99,
			OriginalValue:   360,
			Items:           5,
			Images: []string{
				"https://images.unsplash.com/photo-1469334031218-e382a71b716b?w=600",
				"https://images.unsplash.com/photo-1495385794356-15371f348c31?w=600",
				"https://images.unsplash.com/photo-1496747611176-843222e1e57c?w=600",
			},
			Tags:    []string{"bohemian", "artistic", "flowing", "natural"},
			Rating:  4.8,
			Reviews: 203,
			Sustainability: entity.Sustainability{
				Co2Saved:     "16kg",
				WaterSaved:   "11,000L",
				WasteReduced: "4kg",
			},
		},
		{
			Id:              "minimalist-capsule",
			Name:            "Minimal Capsule",
			Category:        constant.CategoryMinimal,
			Description:     "Less is more with quality essentials",
			LongDescription: "A thoughtfully curated capsule collection. Neutral tones, clean lines, and versatile pieces that mix and match effortlessly for countless outfit combinations.",
			Price:           62.99,
			OriginalValue:   450,
			Items:           6,
			Images: []string{
				"https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=600",
				"https://images.unsplash.com/photo-1485968579580-b6d095142e6e?w=600",
				"https://images.unsplash.com/photo-1509631179647-0177331693ae?w=600",
			},
			Tags:    []string{"minimalist", "versatile", "neutral", "capsule"},
			Rating:  4.9,
			Reviews: 278,
			Sustainability: entity.Sustainability{
				Co2Saved:     "20kg",
				WaterSaved:   "14,000L",
				WasteReduced: "4.5kg",
			},
		},
		{
			Id:              "sporty-active",
			Name:            "Active Lifestyle",
			Category:        constant.CategorySporty,
			Description:     "Performance meets sustainable fashion",
			LongDescription: "Pre-loved activewear that performs. Quality leggings, breathable tops, and comfortable sneakers for workouts, yoga, or athleisure days.",
			Price:           39.99,
			OriginalValue:   250,
			Items:           5,
			Images: []string{
				"https://images.unsplash.com/photo-1518310383802-640c2de311b2?w=600",
				"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=600",
				"https://images.unsplash.com/photo-1483721310020-03333e577078?w=600",
			},
			Tags:    []string{"active", "comfortable", "sporty", "athleisure"},
			Rating:  4.6,
			Reviews: 156,
			Sustainability: entity.Sustainability{
				Co2Saved:     "10kg",
				WaterSaved:   "7,000L",
				WasteReduced: "2.5kg",
			},
		},
		{
			Id:              "evening-glam",
			Name:            "Evening Edit",
			Category:        constant.CategoryEvening,
			Description:     "Statement pieces for special moments",
			LongDescription: "Occasion wear without the guilt. Stunning dresses, elegant accessories, and special pieces perfect for events, dates, and celebrations.",
			Price:           69.99,
			OriginalValue:   600,
			Items:           3,
			Images: []string{
				"https://images.unsplash.com/photo-1518609878373-06d740f60d8b?w=600",
				"https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=600",
				"https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=600",
			},
			Tags:    []string{"evening", "elegant", "special", "glamorous"},
			Rating:  4.8,
			Reviews: 98,
			Sustainability: entity.Sustainability{
				Co2Saved:     "25kg",
				WaterSaved:   "18,000L",
				WasteReduced: "6kg",
			},
		},
	}
}
