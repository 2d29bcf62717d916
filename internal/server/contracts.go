package server

import (
	"fmt"
	"strings"
	"time"

	"postcraft/internal/analytics"
	"postcraft/internal/model"
	"postcraft/internal/platform"
)

type draftRequest struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
	ImageURL string   `json:"imageUrl"`
	HasVideo bool     `json:"hasVideo"`
}

func (r draftRequest) draft() model.ContentDraft {
	tags := r.Hashtags
	if tags == nil {
		tags = []string{}
	}
	return model.ContentDraft{Caption: r.Caption, Hashtags: tags, ImageURL: r.ImageURL, HasVideo: r.HasVideo}
}

type adaptRequest struct {
	draftRequest
	Platform string `json:"platform"`
}

type preflightRequest struct {
	draftRequest
	Platform string `json:"platform"`
	HasImage *bool  `json:"hasImage"`
}

// media resolves the explicit media flags, falling back to the draft.
func (r preflightRequest) media() (bool, bool) {
	hasImage := strings.TrimSpace(r.ImageURL) != ""
	if r.HasImage != nil {
		hasImage = *r.HasImage
	}
	return hasImage, r.HasVideo
}

type hashtagRequest struct {
	Caption  string   `json:"caption"`
	Platform string   `json:"platform"`
	Existing []string `json:"existing"`
	Niche    string   `json:"niche"`
}

type adaptAllResponse struct {
	Renderings []model.PlatformRendering  `json:"renderings"`
	Summary    analytics.CrossPostSummary `json:"summary"`
}

type scheduleResponse struct {
	Platform platform.Platform `json:"platform"`
	Now      time.Time         `json:"now"`
	Next     time.Time         `json:"next"`
	Upcoming []time.Time       `json:"upcoming"`
}

type hashtagResponse struct {
	Platform platform.Platform `json:"platform"`
	Hashtags []string          `json:"hashtags"`
}

func parsePlatform(s string) (platform.Platform, error) {
	if strings.TrimSpace(s) == "" {
		return 0, fmt.Errorf("%w: platform is required", ErrInvalidInput)
	}
	return platform.Parse(s)
}
