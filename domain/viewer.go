package domain

import (
	"context"
	"strings"
)

// Viewer is the identity attached to a request. A nil *Viewer is anonymous.
type Viewer struct {
	Subject   string `json:"sub"`
	Email     string `json:"email"`
	SessionID string `json:"session_id,omitempty"`
}

// NormalizedEmail is the lookup key for entitlement records.
func (v *Viewer) NormalizedEmail() string {
	if v == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(v.Email))
}

type contextKey string

const ViewerContextKey contextKey = "viewer"

// ViewerFromContext returns the viewer or nil for anonymous requests.
func ViewerFromContext(ctx context.Context) *Viewer {
	v, ok := ctx.Value(ViewerContextKey).(*Viewer)
	if !ok || v == nil || v.Email == "" {
		return nil
	}
	return v
}

func SetViewer(ctx context.Context, v *Viewer) context.Context {
	return context.WithValue(ctx, ViewerContextKey, v)
}
