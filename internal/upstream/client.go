// Package upstream talks to the remote inventory API, the system of record
// for stock truth. The gateway itself persists nothing; every durable change
// goes through this client.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"gudang-gateway/internal/domain"
)

type tokenKey struct{}

// ContextWithToken attaches the client-held API token to ctx. The token is
// injected as `Authorization: Token <t>` on every upstream request, mirroring
// how the browser front end carried it.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the API token previously attached to ctx.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// Client is a thin JSON client for the inventory API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     *logrus.Entry
}

// New builds a Client. baseURL must include the API prefix,
// e.g. http://127.0.0.1:8000/api/.
func New(baseURL string, timeout time.Duration, log *logrus.Entry) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse upstream base url")
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

// Ping reports whether the upstream API is reachable at all. Any HTTP
// response counts as reachable; only transport failures do not.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.Fault{Kind: domain.FaultConnectivity, Detail: "inventory API unreachable", Err: err}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

// do issues one request and returns the raw response body, classifying any
// failure per the fault taxonomy.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, errors.Wrapf(err, "parse upstream path %q", path)
	}
	target := c.baseURL.ResolveReference(ref).String()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "encode upstream payload")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.Wrap(err, "build upstream request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.Fault{Kind: domain.FaultConnectivity, Detail: "cannot reach inventory API", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.Fault{Kind: domain.FaultConnectivity, Detail: "read upstream response", Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	}).Warn("upstream call failed")

	switch {
	case resp.StatusCode >= 500:
		return nil, &domain.Fault{Kind: domain.FaultServer, Detail: "inventory API server error"}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		fault := &domain.Fault{Kind: domain.FaultValidation, Detail: extractDetail(raw), Err: domain.ErrInvalidCredentials}
		return nil, errors.Mark(fault, domain.ErrInvalidCredentials)
	case resp.StatusCode == http.StatusNotFound:
		fault := &domain.Fault{Kind: domain.FaultValidation, Detail: extractDetail(raw), Err: domain.ErrNotFound}
		return nil, errors.Mark(fault, domain.ErrNotFound)
	default:
		return nil, &domain.Fault{Kind: domain.FaultValidation, Detail: extractDetail(raw)}
	}
}

// extractDetail pulls a human-readable message out of an upstream error body.
// The API reports field errors as {"field": ["msg"]} and general ones as
// {"detail": "msg"}; error pages come back as HTML.
func extractDetail(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return "request rejected"
	}
	if strings.HasPrefix(trimmed, "<") {
		return "request rejected"
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "request rejected"
	}
	// Quantity validation carries the interesting message during checkout.
	for _, key := range []string{"jumlah", "detail", "non_field_errors"} {
		if msg, ok := fields[key]; ok {
			if s := flattenMessage(msg); s != "" {
				return s
			}
		}
	}
	for _, msg := range fields {
		if s := flattenMessage(msg); s != "" {
			return s
		}
	}
	return "request rejected"
}

func flattenMessage(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", ")
	}
	return ""
}

// decodeList handles both plain-array and paginated {"results": [...]} list
// bodies; the upstream switches shape depending on pagination settings.
func decodeList[T any](raw []byte) ([]T, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, errors.Wrap(err, "decode upstream list")
		}
		return items, nil
	}
	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, errors.Wrap(err, "decode upstream page")
	}
	if page.Results == nil {
		return nil, errors.New("upstream list body has no results")
	}
	return page.Results, nil
}
