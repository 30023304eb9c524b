package access_usecase

import (
	"context"
	"testing"

	"allaboutxrp/domain"
	"allaboutxrp/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAccessUsecase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockSubscriptionStatusProvider(ctrl)
	viewer := &domain.Viewer{Email: "pro@example.com"}

	provider.EXPECT().SubscriptionStatus(gomock.Any(), viewer).Return(domain.SubscriptionStatus{Subscribed: true})

	decision, status := NewAccessUsecase(provider).Execute(context.Background(), richDigest(), viewer)
	assert.Equal(t, domain.AccessFull, decision.Kind)
	assert.True(t, status.CanManageSubscription())
}

func TestAccessUsecase_Execute_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockSubscriptionStatusProvider(ctrl)
	provider.EXPECT().SubscriptionStatus(gomock.Any(), gomock.Nil()).Return(domain.SubscriptionStatus{})

	decision, status := NewAccessUsecase(provider).Execute(context.Background(), richDigest(), nil)
	assert.Equal(t, domain.AccessPaywall, decision.Kind)
	assert.False(t, status.CanManageSubscription())
}
