package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("assistant session not found")

	// ErrSessionNotReady rejects free-text chat while onboarding is running.
	ErrSessionNotReady = errors.New("finish the style quiz before chatting")
)

type CreateSessionRequest struct {
	Mode string `json:"mode" validate:"omitempty,oneof=boxes outfits"`
}

type OutfitItemResponse struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

type OutfitSuggestionResponse struct {
	Occasion string               `json:"occasion"`
	Items    []OutfitItemResponse `json:"items"`
	Tips     string               `json:"tips"`
}

type ChatMessageResponse struct {
	Id              uuid.UUID                 `json:"id"`
	Role            string                    `json:"role"`
	Content         string                    `json:"content"`
	Recommendations []BoxResponse             `json:"recommendations,omitempty"`
	Outfit          *OutfitSuggestionResponse `json:"outfit,omitempty"`
	Pending         bool                      `json:"pending"`
	CreatedAt       time.Time                 `json:"created_at"`
}

type SessionResponse struct {
	SessionId   string               `json:"session_id"`
	Mode        string               `json:"mode"`
	State       string               `json:"state"`
	Greeting    *ChatMessageResponse `json:"greeting"`
	StylePoints int                  `json:"style_points"`
}

type SendChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Chat      string `json:"chat" validate:"required"`
}

type SendChatResponse struct {
	SessionId string               `json:"session_id"`
	State     string               `json:"state"`
	Sent      *ChatMessageResponse `json:"sent"`
	Reply     *ChatMessageResponse `json:"reply"`
}

type ToggleOnboardingRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Dimension string `json:"dimension" validate:"required,oneof=styles colors occasions"`
	Tag       string `json:"tag" validate:"required"`
}

type AdvanceOnboardingRequest struct {
	SessionId string `json:"session_id" validate:"required"`
}

type ProfileResponse struct {
	Styles      []string `json:"styles"`
	Colors      []string `json:"colors"`
	Occasions   []string `json:"occasions"`
	CurrentStep int      `json:"current_step"`
}

// OnboardingResponse reports the step counter after a toggle or advance.
// Notice is filled (and the log untouched) when the advance was blocked by
// an empty selection; Reply carries the recommendation message once the
// final step completes.
type OnboardingResponse struct {
	SessionId string               `json:"session_id"`
	State     string               `json:"state"`
	Profile   ProfileResponse      `json:"profile"`
	Notice    string               `json:"notice,omitempty"`
	Completed bool                 `json:"completed"`
	Reply     *ChatMessageResponse `json:"reply,omitempty"`
}

type AnalyzePhotoRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Image     string `json:"image" validate:"required"`
	MimeType  string `json:"mime_type" validate:"omitempty"`
}

type PointsResponse struct {
	SessionId   string `json:"session_id"`
	StylePoints int    `json:"style_points"`
}
