package marketplace

import (
	"context"
	"errors"
)

// StaticTokenProvider implements TokenProvider with a fixed personal API
// token. The marketplace issues long-lived tokens per seller account, so
// there is no refresh flow.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider for a pre-issued API token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// Token returns the configured token.
func (p *StaticTokenProvider) Token(_ context.Context) (string, error) {
	if p.token == "" {
		return "", errors.New("marketplace API token is not configured")
	}
	return p.token, nil
}
