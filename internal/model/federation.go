package model

import "context"

// FederationProvider exchanges an authorization code with an external
// identity provider and normalizes the returned identity. It owns no
// persistent state.
type FederationProvider interface {
	// AuthURL returns the provider consent URL for the given CSRF state.
	AuthURL(state string) string
	// Exchange performs the code exchange and ID-token verification.
	Exchange(ctx context.Context, code string) (FederatedIdentity, error)
}

// FederatedIdentity is the normalized result of a provider handshake.
type FederatedIdentity struct {
	Email     string
	SubjectID string
}
