package share_gateway

import (
	"context"
	"testing"

	"allaboutxrp/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentPlatform(t *testing.T) {
	native := NewIntentPlatform(true)
	assert.True(t, native.SupportsNativeShare())
	require.NoError(t, native.ShareNative(context.Background(), domain.ShareRequest{Title: "Week 10", URL: "https://allaboutxrp.com/digest/week-10"}))
	require.NotNil(t, native.Shared)
	assert.Equal(t, "Week 10", native.Shared.Title)

	fallback := NewIntentPlatform(false)
	assert.False(t, fallback.SupportsNativeShare())
	require.NoError(t, fallback.CopyToClipboard(context.Background(), "https://allaboutxrp.com/digest/week-10"))
	assert.Equal(t, "https://allaboutxrp.com/digest/week-10", fallback.Copied)
	assert.Nil(t, fallback.Shared)
}
