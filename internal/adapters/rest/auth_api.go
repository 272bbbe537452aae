package rest

import (
	"context"
	"net/http"

	"github.com/relaymarket/relay-go/internal/domain/identity"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
	"github.com/relaymarket/relay-go/internal/ports"
)

// AuthAPI implements ports.AuthAPI against the shopper and staff endpoint
// families.
type AuthAPI struct {
	client *Client
}

var _ ports.AuthAPI = (*AuthAPI)(nil)

// NewAuthAPI constructs an AuthAPI on the shared client.
func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the kind-appropriate login endpoint. The bearer
// token is extracted from the Authorization response header first, then from
// the accessToken body field.
func (a *AuthAPI) Login(ctx context.Context, kind identity.PrincipalKind, in ports.LoginInput) (string, error) {
	path := pathShopperLogin
	if kind == identity.KindStaff {
		path = pathStaffLogin
	}

	resp, err := a.client.do(ctx, http.MethodPost, path, loginRequest{Email: in.Email, Password: in.Password}, unauthenticated())
	if err != nil {
		return "", err
	}
	if !resp.ok() {
		statusErr := resp.statusError()
		message := statusErr.Message
		if message == "" {
			message = "invalid email or password"
		}
		return "", apperrors.Wrap(statusErr, apperrors.ErrCodeAuthentication, message)
	}

	return extractToken(resp.header, resp.body)
}

// Logout calls the kind-appropriate logout endpoint. Callers treat failure as
// best-effort; this just reports it.
func (a *AuthAPI) Logout(ctx context.Context, kind identity.PrincipalKind) error {
	path := pathShopperLogout
	if kind == identity.KindStaff {
		path = pathStaffLogout
	}

	resp, err := a.client.do(ctx, http.MethodPost, path, nil)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return resp.statusError()
	}
	return nil
}

// Self resolves the current principal from the kind-appropriate self-lookup
// endpoint. Expected shape: {"data": principal} or a bare principal object.
func (a *AuthAPI) Self(ctx context.Context, kind identity.PrincipalKind) (identity.Principal, error) {
	path := pathShopperSelf
	if kind == identity.KindStaff {
		path = pathStaffSelf
	}

	resp, err := a.client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return identity.Principal{}, err
	}
	if !resp.ok() {
		return identity.Principal{}, apperrors.Wrap(resp.statusError(), apperrors.ErrCodeSessionResolution, "resolve principal")
	}

	principal, err := decodeData[identity.Principal](resp.body)
	if err != nil {
		return identity.Principal{}, err
	}
	if principal.ID == "" {
		return identity.Principal{}, apperrors.New(apperrors.ErrCodeDecode, "principal payload missing id")
	}
	return principal, nil
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
}

// Signup registers a new shopper account. Registration does not authenticate.
func (a *AuthAPI) Signup(ctx context.Context, in ports.SignupInput) error {
	resp, err := a.client.do(ctx, http.MethodPost, pathShopperSignup, signupRequest{
		Email:    in.Email,
		Password: in.Password,
		Nickname: in.DisplayName,
		Phone:    in.Phone,
	}, unauthenticated())
	if err != nil {
		return err
	}
	if !resp.ok() {
		statusErr := resp.statusError()
		message := statusErr.Message
		if message == "" {
			message = "signup failed"
		}
		return apperrors.Wrap(statusErr, apperrors.ErrCodeValidation, message)
	}
	return nil
}
