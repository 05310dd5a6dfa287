package entity

import (
	"time"

	"github.com/google/uuid"
)

// OutfitItem references one garment of a suggested outfit.
type OutfitItem struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// OutfitSuggestion is a complete look built from the user's wardrobe.
type OutfitSuggestion struct {
	Occasion string       `json:"occasion"`
	Items    []OutfitItem `json:"items"`
	Tips     string       `json:"tips"`
}

// ChatMessage is one turn in the assistant conversation. A message is
// created either resolved (user turns) or pending (assistant typing
// placeholder); resolving a pending message is the only permitted mutation
// and happens exactly once, by replacement in the conversation log.
type ChatMessage struct {
	Id              uuid.UUID         `json:"id"`
	Role            string            `json:"role"`
	Content         string            `json:"content"`
	Recommendations []Box             `json:"recommendations,omitempty"`
	Outfit          *OutfitSuggestion `json:"outfit,omitempty"`
	Pending         bool              `json:"pending"`
	CreatedAt       time.Time         `json:"created_at"`
}
