package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
)

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleCustomer  Role = "customer"
	RoleAdmin     Role = "admin"
	// RoleSystem is used by internal flows (webhook reconciliation, sweeps).
	// No request credential maps to it.
	RoleSystem Role = "system"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access denied")
	ErrInvalidToken    = errors.New("invalid token")
)

type Principal struct {
	Role       Role
	CustomerID string
}

func Anonymous() Principal { return Principal{Role: RoleAnonymous} }

func Admin() Principal { return Principal{Role: RoleAdmin} }

func System() Principal { return Principal{Role: RoleSystem} }

func Customer(id string) Principal { return Principal{Role: RoleCustomer, CustomerID: id} }

// Privileged reports whether the principal may modify or delete orders.
func (p Principal) Privileged() bool {
	return p.Role == RoleAdmin || p.Role == RoleSystem
}

// CanRead reports whether the principal may read an order owned by customerID.
func (p Principal) CanRead(customerID string) error {
	switch {
	case p.Privileged():
		return nil
	case p.Role == RoleCustomer && customerID != "" && p.CustomerID == customerID:
		return nil
	case p.Role == RoleCustomer:
		return ErrForbidden
	default:
		return ErrUnauthenticated
	}
}

// CanModify reports whether the principal may update or delete orders.
func (p Principal) CanModify() error {
	switch {
	case p.Privileged():
		return nil
	case p.Role == RoleCustomer:
		return ErrForbidden
	default:
		return ErrUnauthenticated
	}
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) Principal {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok {
		return Anonymous()
	}
	return p
}

// TokenAuthenticator resolves bearer tokens. The admin token is a static
// secret; customer tokens are "<customerID>.<hex hmac-sha256(customerID)>"
// issued by the account system with a shared secret.
type TokenAuthenticator struct {
	adminToken     []byte
	customerSecret []byte
}

func NewTokenAuthenticator(adminToken, customerSecret string) *TokenAuthenticator {
	return &TokenAuthenticator{
		adminToken:     []byte(adminToken),
		customerSecret: []byte(customerSecret),
	}
}

func (a *TokenAuthenticator) Authenticate(token string) (Principal, error) {
	if token == "" {
		return Anonymous(), nil
	}
	if len(a.adminToken) > 0 && subtle.ConstantTimeCompare([]byte(token), a.adminToken) == 1 {
		return Admin(), nil
	}

	id, sig, ok := strings.Cut(token, ".")
	if !ok || id == "" || len(a.customerSecret) == 0 {
		return Principal{}, ErrInvalidToken
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return Principal{}, ErrInvalidToken
	}
	if !hmac.Equal(got, a.sign(id)) {
		return Principal{}, ErrInvalidToken
	}
	return Customer(id), nil
}

// IssueCustomerToken returns a token for customerID.
func (a *TokenAuthenticator) IssueCustomerToken(customerID string) string {
	return customerID + "." + hex.EncodeToString(a.sign(customerID))
}

func (a *TokenAuthenticator) sign(id string) []byte {
	mac := hmac.New(sha256.New, a.customerSecret)
	mac.Write([]byte(id))
	return mac.Sum(nil)
}
