package federation

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/sentra-app/auth-server/internal/model"
)

// GoogleIssuer is the OIDC discovery issuer for Google accounts.
const GoogleIssuer = "https://accounts.google.com"

var _ model.FederationProvider = (*Google)(nil)

// Google exchanges authorization codes with Google and normalizes the
// verified ID token into (email, subject). It owns no persistent state.
type Google struct {
	oauth    *oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// NewGoogle discovers the Google OIDC endpoints and builds the adapter.
func NewGoogle(ctx context.Context, clientID, clientSecret, redirectURL string) (*Google, error) {
	provider, err := oidc.NewProvider(ctx, GoogleIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover google provider: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     provider.Endpoint(),
		RedirectURL:  redirectURL,
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	return &Google{
		oauth:    oauthConfig,
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// AuthURL returns the Google consent URL for the given CSRF state.
func (g *Google) AuthURL(state string) string {
	return g.oauth.AuthCodeURL(state)
}

// Exchange trades the authorization code for tokens, verifies the ID token
// and extracts the identity claims.
func (g *Google) Exchange(ctx context.Context, code string) (model.FederatedIdentity, error) {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return model.FederatedIdentity{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return model.FederatedIdentity{}, errors.New("no id_token in token response")
	}

	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return model.FederatedIdentity{}, fmt.Errorf("failed to verify id token: %w", err)
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return model.FederatedIdentity{}, fmt.Errorf("failed to parse id token claims: %w", err)
	}

	return normalizeIdentity(claims.Email, idToken.Subject)
}

// normalizeIdentity validates that the provider returned both required
// identity claims.
func normalizeIdentity(email, subject string) (model.FederatedIdentity, error) {
	if email == "" {
		return model.FederatedIdentity{}, errors.New("provider response missing email claim")
	}
	if subject == "" {
		return model.FederatedIdentity{}, errors.New("provider response missing subject claim")
	}
	return model.FederatedIdentity{Email: email, SubjectID: subject}, nil
}
