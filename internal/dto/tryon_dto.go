package dto

import "errors"

var ErrBoxNotFound = errors.New("box not found")

// InvalidImageError is the local-validation failure: reported inline to the
// user, no retry suggested.
type InvalidImageError struct {
	Reason string
}

func (e *InvalidImageError) Error() string {
	return e.Reason
}

type TryOnRequest struct {
	BoxId    string `json:"box_id" validate:"required"`
	Image    string `json:"image" validate:"required"`
	MimeType string `json:"mime_type" validate:"omitempty"`
}

type TryOnResponse struct {
	BoxId       string `json:"box_id"`
	ResultImage string `json:"result_image"`
	Message     string `json:"message"`
}
