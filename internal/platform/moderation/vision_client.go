// Package moderation provides a SafeSearch pre-check for uploaded images
// using the Google Cloud Vision API.
package moderation

import (
	"context"
	"errors"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
)

// ErrImageRejected is returned when SafeSearch flags the image.
var ErrImageRejected = errors.New("image rejected by moderation")

// VisionModerator screens avatar/cover images via Cloud Vision SafeSearch.
type VisionModerator struct {
	client *gvision.ImageAnnotatorClient
}

// NewVisionModerator creates a new instance using Application Default Credentials.
func NewVisionModerator(ctx context.Context) (*VisionModerator, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionModerator{client: client}, nil
}

// Close releases the Vision API client.
func (v *VisionModerator) Close() error {
	return v.client.Close()
}

// Check runs SafeSearch detection over the image bytes.
// A likelihood of LIKELY or above for adult, violence or racy content
// returns ErrImageRejected.
func (v *VisionModerator) Check(ctx context.Context, imageData []byte) error {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_SAFE_SEARCH_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return fmt.Errorf("vision API request failed: %w", err)
	}
	if len(resp.Responses) == 0 {
		return nil
	}
	if resp.Responses[0].Error != nil {
		return fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	ann := resp.Responses[0].SafeSearchAnnotation
	if ann == nil {
		return nil
	}
	for _, likelihood := range []visionpb.Likelihood{ann.Adult, ann.Violence, ann.Racy} {
		if likelihood >= visionpb.Likelihood_LIKELY {
			return ErrImageRejected
		}
	}
	return nil
}
