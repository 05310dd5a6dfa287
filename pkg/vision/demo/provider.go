// Package demo provides a StyleProvider that never touches the network:
// analysis returns a randomized category subset with a canned description,
// try-on echoes the input photo back after an artificial delay.
package demo

import (
	"context"
	"math/rand"
	"time"

	"outfix-be/internal/constant"
	"outfix-be/pkg/vision"
)

const (
	analyzeDelay = 1500 * time.Millisecond
	tryOnDelay   = 2 * time.Second

	categoriesPerAnalysis = 2
)

type Provider struct {
	categories []string
	sleep      func(time.Duration)
	shuffle    func(n int, swap func(i, j int))
}

var _ vision.StyleProvider = &Provider{}

// NewProvider draws demo categories from the given enumeration (the "All"
// sentinel is not a real category and must not be passed in).
func NewProvider(categories []string) *Provider {
	return &Provider{
		categories: categories,
		sleep:      time.Sleep,
		shuffle:    rand.Shuffle,
	}
}

// AnalyzeStyle returns a deterministic shape with randomized content: the
// canned description plus a random 2-category pick.
func (p *Provider) AnalyzeStyle(ctx context.Context, imageBase64 string) (*vision.StyleAnalysis, error) {
	p.sleep(analyzeDelay)

	picked := make([]string, len(p.categories))
	copy(picked, p.categories)
	p.shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if len(picked) > categoriesPerAnalysis {
		picked = picked[:categoriesPerAnalysis]
	}

	return &vision.StyleAnalysis{
		Description: constant.DemoStyleAnalysis,
		Categories:  picked,
	}, nil
}

func (p *Provider) VirtualTryOn(ctx context.Context, req *vision.TryOnRequest) (*vision.TryOnResult, error) {
	p.sleep(tryOnDelay)
	return &vision.TryOnResult{
		ResultImage: req.UserImage,
		Message:     "Demo mode - no live API call was made",
	}, nil
}
