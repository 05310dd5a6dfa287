package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"outfix-be/internal/dto"
	"outfix-be/pkg/stylist/onboarding"
)

// ErrorHandlerMiddleware maps service errors to JSON envelopes. Failures
// surfaced as conversation content never reach this layer; what arrives
// here is local validation, missing resources, and the unexpected.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(ve.Error()))
		}

		var ie *dto.InvalidImageError
		if errors.As(err, &ie) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(ie.Reason))
		}

		if errors.Is(err, dto.ErrSessionNotFound) || errors.Is(err, dto.ErrBoxNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error()))
		}

		if errors.Is(err, dto.ErrSessionNotReady) ||
			errors.Is(err, onboarding.ErrEmptySelection) ||
			errors.Is(err, onboarding.ErrProfileFrozen) ||
			errors.Is(err, onboarding.ErrUnknownDimension) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(err.Error()))
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
