package share_gateway

import (
	"context"

	"allaboutxrp/domain"
	"allaboutxrp/port/share_port"
)

var _ share_port.SharePlatform = (*IntentPlatform)(nil)

// IntentPlatform records what the browser should do instead of doing it.
// The renderer performs the recorded intent on the viewer's device.
type IntentPlatform struct {
	native bool

	Shared *domain.ShareRequest
	Copied string
}

// NewIntentPlatform describes a viewer whose browser does or does not
// offer the native share sheet.
func NewIntentPlatform(native bool) *IntentPlatform {
	return &IntentPlatform{native: native}
}

func (p *IntentPlatform) SupportsNativeShare() bool {
	return p.native
}

func (p *IntentPlatform) ShareNative(_ context.Context, req domain.ShareRequest) error {
	p.Shared = &req
	return nil
}

func (p *IntentPlatform) CopyToClipboard(_ context.Context, url string) error {
	p.Copied = url
	return nil
}
