package vision

import (
	"testing"
	"time"
)

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name       string
		sizeBytes  int64
		mimeType   string
		wantValid  bool
		wantReason string
	}{
		{
			name:      "4MB jpeg accepted",
			sizeBytes: 4 * 1024 * 1024,
			mimeType:  "image/jpeg",
			wantValid: true,
		},
		{
			name:      "png accepted",
			sizeBytes: 1024,
			mimeType:  "image/png",
			wantValid: true,
		},
		{
			name:      "mime type check is case-insensitive",
			sizeBytes: 1024,
			mimeType:  "IMAGE/JPG",
			wantValid: true,
		},
		{
			name:       "6MB rejected for size",
			sizeBytes:  6 * 1024 * 1024,
			mimeType:   "image/jpeg",
			wantReason: "image is too large (max 5MB)",
		},
		{
			name:       "pdf rejected for type",
			sizeBytes:  1024,
			mimeType:   "application/pdf",
			wantReason: "unsupported image format (JPG or PNG only)",
		},
		{
			name:       "oversized takes precedence over type",
			sizeBytes:  6 * 1024 * 1024,
			mimeType:   "application/pdf",
			wantReason: "image is too large (max 5MB)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateImage(tt.sizeBytes, tt.mimeType)

			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestSplitDataURI(t *testing.T) {
	tests := []struct {
		name     string
		image    string
		wantMime string
		wantData string
	}{
		{
			name:     "data uri stripped",
			image:    "data:image/png;base64,iVBORw0KGgo=",
			wantMime: "image/png",
			wantData: "iVBORw0KGgo=",
		},
		{
			name:     "bare payload passes through",
			image:    "iVBORw0KGgo=",
			wantMime: "",
			wantData: "iVBORw0KGgo=",
		},
		{
			name:     "malformed prefix passes through",
			image:    "data:image/png",
			wantMime: "",
			wantData: "data:image/png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, data := SplitDataURI(tt.image)
			if mime != tt.wantMime {
				t.Errorf("mime = %q, want %q", mime, tt.wantMime)
			}
			if data != tt.wantData {
				t.Errorf("data = %q, want %q", data, tt.wantData)
			}
		})
	}
}

func TestDecodedSize(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int64
	}{
		{name: "no padding", data: "aGVsbG8h", want: 6},
		{name: "one pad", data: "aGVsbG8=", want: 5},
		{name: "two pads", data: "aGVsbA==", want: 4},
		{name: "empty", data: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodedSize(tt.data); got != tt.want {
				t.Errorf("DecodedSize(%q) = %d, want %d", tt.data, got, tt.want)
			}
		})
	}
}

func TestGateErrorWaitSeconds(t *testing.T) {
	tests := []struct {
		name string
		wait time.Duration
		want int
	}{
		{name: "rounds partial second up", wait: 1200 * time.Millisecond, want: 2},
		{name: "whole seconds unchanged", wait: 2 * time.Second, want: 2},
		{name: "sub-second becomes one", wait: 300 * time.Millisecond, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &GateError{Wait: tt.wait}
			if got := err.WaitSeconds(); got != tt.want {
				t.Errorf("WaitSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}
