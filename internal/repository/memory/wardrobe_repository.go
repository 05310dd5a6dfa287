package memory

import (
	"outfix-be/internal/entity"
	"outfix-be/internal/repository/contract"
)

type WardrobeRepository struct {
	items []entity.WardrobeItem
}

var _ contract.WardrobeRepository = &WardrobeRepository{}

func NewWardrobeRepository() *WardrobeRepository {
	return &WardrobeRepository{items: seedWardrobe()}
}

func (r *WardrobeRepository) GetAll() []entity.WardrobeItem {
	out := make([]entity.WardrobeItem, len(r.items))
	copy(out, r.items)
	return out
}

func seedWardrobe() []entity.WardrobeItem {
	return []entity.WardrobeItem{
		{Id: "1", Name: "Black slim jeans", Type: "Trousers", Color: "Black", Image: "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=200&h=200&fit=crop"},
		{Id: "2", Name: "White shirt", Type: "Top", Color: "White", Image: "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=200&h=200&fit=crop"},
		{Id: "3", Name: "Grey sweater", Type: "Top", Color: "Grey", Image: "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=200&h=200&fit=crop"},
		{Id: "4", Name: "Denim jacket", Type: "Jacket", Color: "Blue", Image: "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=200&h=200&fit=crop"},
		{Id: "5", Name: "Black dress", Type: "Dress", Color: "Black", Image: "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=200&h=200&fit=crop"},
		{Id: "6", Name: "White sneakers", Type: "Shoes", Color: "White", Image: "https://images.unsplash.com/photo-1600185365483-26d7a4cc7519?w=200&h=200&fit=crop"},
	}
}
