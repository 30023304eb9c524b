package share_usecase

import (
	"context"

	"allaboutxrp/domain"
	"allaboutxrp/port/share_port"
	"allaboutxrp/utils/logger"
)

type ShareUsecase struct{}

func NewShareUsecase() *ShareUsecase {
	return &ShareUsecase{}
}

// Execute shares the digest page through the viewer's platform. Native share
// is preferred; otherwise the link is copied and a notice is returned at once.
// Failures are never surfaced: OK is false and nothing else changes.
func (u *ShareUsecase) Execute(ctx context.Context, digest *domain.Digest, pageURL string, platform share_port.SharePlatform) domain.ShareResult {
	req := domain.ShareRequest{Title: digest.DisplayTitle(), URL: pageURL}

	if platform.SupportsNativeShare() {
		result := domain.ShareResult{Method: domain.ShareMethodNative, Intent: req, OK: true}
		if err := platform.ShareNative(ctx, req); err != nil {
			logger.FromContext(ctx).Debug("native share failed", "slug", digest.Slug, "error", err)
			result.OK = false
		}
		return result
	}

	result := domain.ShareResult{Method: domain.ShareMethodClipboard, Intent: req, Notice: domain.LinkCopiedNotice, OK: true}
	if err := platform.CopyToClipboard(ctx, pageURL); err != nil {
		logger.FromContext(ctx).Debug("clipboard copy failed", "slug", digest.Slug, "error", err)
		result.OK = false
	}
	return result
}
