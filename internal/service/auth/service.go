package auth

import (
	"context"
	"strings"

	"gudang-gateway/internal/domain"
)

type authAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	FetchProfile(ctx context.Context) (domain.Profile, error)
}

// Service proxies authentication to the upstream API. The token it returns
// is held by the client and presented on every later request; the gateway
// keeps no account state.
type Service struct {
	api authAPI
}

func New(api authAPI) *Service {
	return &Service{api: api}
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}
	return s.api.Login(ctx, username, password)
}

func (s *Service) Profile(ctx context.Context) (domain.Profile, error) {
	return s.api.FetchProfile(ctx)
}
