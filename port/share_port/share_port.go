package share_port

//go:generate go run go.uber.org/mock/mockgen -source=share_port.go -destination=../../mocks/mock_share_port.go -package=mocks

import (
	"context"

	"allaboutxrp/domain"
)

// SharePlatform is the viewer's sharing capability.
type SharePlatform interface {
	SupportsNativeShare() bool
	ShareNative(ctx context.Context, req domain.ShareRequest) error
	CopyToClipboard(ctx context.Context, url string) error
}
