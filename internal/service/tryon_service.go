package service

import (
	"context"

	"outfix-be/internal/dto"
	"outfix-be/internal/pkg/logger"
	"outfix-be/internal/repository/contract"
	"outfix-be/pkg/vision"
)

type ITryOnService interface {
	TryOn(ctx context.Context, req *dto.TryOnRequest) (*dto.TryOnResponse, error)
}

type tryOnService struct {
	boxRepo  contract.BoxRepository
	provider vision.StyleProvider
	log      logger.ILogger
}

func NewTryOnService(
	boxRepo contract.BoxRepository,
	provider vision.StyleProvider,
	log logger.ILogger,
) ITryOnService {
	return &tryOnService{
		boxRepo:  boxRepo,
		provider: provider,
		log:      log,
	}
}

func (ts *tryOnService) TryOn(ctx context.Context, req *dto.TryOnRequest) (*dto.TryOnResponse, error) {
	// 1. Validate the upload before any remote work.
	mimeType, data := vision.SplitDataURI(req.Image)
	if req.MimeType != "" {
		mimeType = req.MimeType
	}
	if vr := vision.ValidateImage(vision.DecodedSize(data), mimeType); !vr.Valid {
		return nil, &dto.InvalidImageError{Reason: vr.Reason}
	}

	// 2. Resolve the box whose garments get composited.
	box, ok := ts.boxRepo.GetById(req.BoxId)
	if !ok {
		return nil, dto.ErrBoxNotFound
	}

	// 3. Delegate to the provider. It degrades to a simulated preview on
	//    its own; an error here is genuinely unexpected.
	result, err := ts.provider.VirtualTryOn(ctx, &vision.TryOnRequest{
		UserImage:     data,
		BoxId:         box.Id,
		GarmentImages: box.Images,
	})
	if err != nil {
		ts.log.Error("tryon_service", "virtual try-on failed", map[string]interface{}{
			"box_id": box.Id,
			"error":  err.Error(),
		})
		return nil, err
	}

	return &dto.TryOnResponse{
		BoxId:       box.Id,
		ResultImage: result.ResultImage,
		Message:     result.Message,
	}, nil
}
