package vision

import "context"

// StyleAnalysis is the remote model's reading of a user photo: a free-text
// description plus 2-3 recommended categories from the catalog enumeration.
type StyleAnalysis struct {
	Description string
	Categories  []string
}

// TryOnRequest carries everything the try-on compositing needs.
type TryOnRequest struct {
	UserImage     string // base64, with or without data-URI prefix
	BoxId         string
	GarmentImages []string
}

// TryOnResult is the composited preview. ResultImage uses the same encoding
// as the input image.
type TryOnResult struct {
	ResultImage string
	Message     string
}

// StyleProvider is the sole boundary to the remote style capability.
//
// The two operations deliberately handle a missing credential differently:
// AnalyzeStyle fails fast with ErrNotConfigured, while VirtualTryOn silently
// falls back to a local simulation so the flow stays demoable. This
// asymmetry is an explicit product decision, not an oversight.
type StyleProvider interface {
	AnalyzeStyle(ctx context.Context, imageBase64 string) (*StyleAnalysis, error)
	VirtualTryOn(ctx context.Context, req *TryOnRequest) (*TryOnResult, error)
}
