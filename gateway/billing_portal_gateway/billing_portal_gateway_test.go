package billing_portal_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"allaboutxrp/domain"
	"allaboutxrp/driver/stripe_client"
	apperrors "allaboutxrp/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingPortalGateway_NotConfigured(t *testing.T) {
	g := NewBillingPortalGateway(nil)
	_, err := g.CreatePortalSession(context.Background(), "cus_1", "https://allaboutxrp.com/digest")
	assert.ErrorIs(t, err, domain.ErrBillingNotConfigured)
}

func TestBillingPortalGateway_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"bps_1","url":"https://billing.stripe.com/p/session/xyz"}`))
	}))
	defer server.Close()

	g := NewBillingPortalGateway(stripe_client.NewClient(server.URL, "sk_test", time.Second))
	got, err := g.CreatePortalSession(context.Background(), "cus_1", "https://allaboutxrp.com/digest")
	require.NoError(t, err)
	assert.Equal(t, "https://billing.stripe.com/p/session/xyz", got)
}

func TestBillingPortalGateway_ProviderRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key"}}`))
	}))
	defer server.Close()

	g := NewBillingPortalGateway(stripe_client.NewClient(server.URL, "sk_bad", time.Second))
	_, err := g.CreatePortalSession(context.Background(), "cus_1", "https://allaboutxrp.com/digest")

	var appErr *apperrors.AppContextError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeExternalAPI, appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatusCode())
	assert.Equal(t, http.StatusUnauthorized, appErr.Context["provider_status"])
}
