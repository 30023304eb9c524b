package share_usecase

import (
	"context"
	"errors"
	"testing"

	"allaboutxrp/domain"
	"allaboutxrp/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const pageURL = "https://allaboutxrp.com/digest/weekly-42"

func TestShareUsecase_Execute(t *testing.T) {
	digest := &domain.Digest{Title: "Week 42", Slug: "weekly-42"}

	tests := []struct {
		name  string
		setup func(m *mocks.MockSharePlatform)
		want  domain.ShareResult
	}{
		{
			name: "native share",
			setup: func(m *mocks.MockSharePlatform) {
				m.EXPECT().SupportsNativeShare().Return(true)
				m.EXPECT().ShareNative(gomock.Any(), domain.ShareRequest{Title: "Week 42", URL: pageURL}).Return(nil)
			},
			want: domain.ShareResult{Method: domain.ShareMethodNative, Intent: domain.ShareRequest{Title: "Week 42", URL: pageURL}, OK: true},
		},
		{
			name: "native share cancelled is swallowed",
			setup: func(m *mocks.MockSharePlatform) {
				m.EXPECT().SupportsNativeShare().Return(true)
				m.EXPECT().ShareNative(gomock.Any(), gomock.Any()).Return(errors.New("AbortError"))
			},
			want: domain.ShareResult{Method: domain.ShareMethodNative, Intent: domain.ShareRequest{Title: "Week 42", URL: pageURL}},
		},
		{
			name: "clipboard fallback with notice",
			setup: func(m *mocks.MockSharePlatform) {
				m.EXPECT().SupportsNativeShare().Return(false)
				m.EXPECT().CopyToClipboard(gomock.Any(), pageURL).Return(nil)
			},
			want: domain.ShareResult{Method: domain.ShareMethodClipboard, Intent: domain.ShareRequest{Title: "Week 42", URL: pageURL}, Notice: "Link copied!", OK: true},
		},
		{
			name: "clipboard failure is swallowed",
			setup: func(m *mocks.MockSharePlatform) {
				m.EXPECT().SupportsNativeShare().Return(false)
				m.EXPECT().CopyToClipboard(gomock.Any(), pageURL).Return(errors.New("denied"))
			},
			want: domain.ShareResult{Method: domain.ShareMethodClipboard, Intent: domain.ShareRequest{Title: "Week 42", URL: pageURL}, Notice: "Link copied!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			platform := mocks.NewMockSharePlatform(ctrl)
			tt.setup(platform)

			assert.Equal(t, tt.want, NewShareUsecase().Execute(context.Background(), digest, pageURL, platform))
		})
	}
}

func TestShareUsecase_Execute_UntitledDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockSharePlatform(ctrl)
	platform.EXPECT().SupportsNativeShare().Return(true)
	platform.EXPECT().ShareNative(gomock.Any(), domain.ShareRequest{Title: "Weekly Digest", URL: pageURL}).Return(nil)

	got := NewShareUsecase().Execute(context.Background(), &domain.Digest{Slug: "weekly-42"}, pageURL, platform)
	assert.True(t, got.OK)
}
