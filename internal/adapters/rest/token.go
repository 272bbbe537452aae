package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	apperrors "github.com/relaymarket/relay-go/internal/errors"
)

// extractToken pulls the access token out of a login or reissue response.
// The backend is inconsistent across endpoints: some return the token in the
// Authorization response header, others in an accessToken body field. The
// header is tried first, then the body; neither yields an authentication
// error.
func extractToken(header http.Header, body []byte) (string, error) {
	if raw := header.Get("Authorization"); raw != "" {
		return strings.TrimSpace(strings.TrimPrefix(raw, "Bearer ")), nil
	}

	var payload struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.AccessToken != "" {
		return payload.AccessToken, nil
	}

	return "", apperrors.Authentication("no access token in response")
}
