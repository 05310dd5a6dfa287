package mapper

import (
	"outfix-be/internal/dto"
	"outfix-be/internal/entity"
)

func ToChatMessageResponse(msg entity.ChatMessage) *dto.ChatMessageResponse {
	out := &dto.ChatMessageResponse{
		Id:        msg.Id,
		Role:      msg.Role,
		Content:   msg.Content,
		Pending:   msg.Pending,
		CreatedAt: msg.CreatedAt,
	}
	if len(msg.Recommendations) > 0 {
		out.Recommendations = ToBoxResponses(msg.Recommendations)
	}
	if msg.Outfit != nil {
		out.Outfit = ToOutfitResponse(msg.Outfit)
	}
	return out
}

func ToChatMessageResponses(msgs []entity.ChatMessage) []*dto.ChatMessageResponse {
	out := make([]*dto.ChatMessageResponse, len(msgs))
	for i, msg := range msgs {
		out[i] = ToChatMessageResponse(msg)
	}
	return out
}

func ToOutfitResponse(outfit *entity.OutfitSuggestion) *dto.OutfitSuggestionResponse {
	items := make([]dto.OutfitItemResponse, len(outfit.Items))
	for i, item := range outfit.Items {
		items[i] = dto.OutfitItemResponse{
			Name:  item.Name,
			Type:  item.Type,
			Color: item.Color,
		}
	}
	return &dto.OutfitSuggestionResponse{
		Occasion: outfit.Occasion,
		Items:    items,
		Tips:     outfit.Tips,
	}
}

func ToProfileResponse(profile entity.StyleProfile) dto.ProfileResponse {
	return dto.ProfileResponse{
		Styles:      profile.Styles,
		Colors:      profile.Colors,
		Occasions:   profile.Occasions,
		CurrentStep: profile.CurrentStep,
	}
}
