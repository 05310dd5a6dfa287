package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"outfix-be/internal/dto"
	"outfix-be/internal/repository/memory"
	"outfix-be/pkg/vision"
)

func newTestTryOn(provider *fakeProvider) ITryOnService {
	return NewTryOnService(memory.NewBoxRepository(), provider, nopLogger{})
}

func TestTryOnSuccess(t *testing.T) {
	provider := &fakeProvider{
		tryOnRes: &vision.TryOnResult{ResultImage: "result-data", Message: "done"},
	}
	svc := newTestTryOn(provider)

	res, err := svc.TryOn(context.Background(), &dto.TryOnRequest{
		BoxId: "casual-basics",
		Image: "data:image/jpeg;base64,aGVsbG8=",
	})

	assert.NoError(t, err)
	assert.Equal(t, "casual-basics", res.BoxId)
	assert.Equal(t, "result-data", res.ResultImage)

	// The provider receives the box's garment images and the bare payload.
	assert.Equal(t, "casual-basics", provider.tryOnReq.BoxId)
	assert.Equal(t, "aGVsbG8=", provider.tryOnReq.UserImage)
	assert.NotEmpty(t, provider.tryOnReq.GarmentImages)
}

func TestTryOnUnknownBox(t *testing.T) {
	svc := newTestTryOn(&fakeProvider{})

	_, err := svc.TryOn(context.Background(), &dto.TryOnRequest{
		BoxId: "no-such-box",
		Image: "data:image/jpeg;base64,aGVsbG8=",
	})

	assert.ErrorIs(t, err, dto.ErrBoxNotFound)
}

func TestTryOnRejectsBadUpload(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestTryOn(provider)

	_, err := svc.TryOn(context.Background(), &dto.TryOnRequest{
		BoxId:    "casual-basics",
		Image:    "aGVsbG8=",
		MimeType: "image/gif",
	})

	var ie *dto.InvalidImageError
	assert.ErrorAs(t, err, &ie)
	assert.Nil(t, provider.tryOnReq)
}
