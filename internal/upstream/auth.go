package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"

	"gudang-gateway/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for an opaque API token. The caller keeps the
// token and presents it on subsequent requests; the gateway stores nothing.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "auth/login/", loginRequest{Username: username, Password: password})
	if err != nil {
		var fault *domain.Fault
		if errors.As(err, &fault) && fault.Kind == domain.FaultValidation {
			return "", errors.Mark(err, domain.ErrInvalidCredentials)
		}
		return "", err
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", errors.Wrap(err, "decode login response")
	}
	if resp.Token == "" {
		return "", errors.New("login response missing token")
	}
	return resp.Token, nil
}

type profileRecord struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// FetchProfile returns the user owning the token in ctx.
func (c *Client) FetchProfile(ctx context.Context) (domain.Profile, error) {
	raw, err := c.do(ctx, http.MethodGet, "profile/", nil)
	if err != nil {
		return domain.Profile{}, err
	}
	var rec profileRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Profile{}, errors.Wrap(err, "decode profile")
	}
	return domain.Profile{
		Username:  rec.Username,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
	}, nil
}
