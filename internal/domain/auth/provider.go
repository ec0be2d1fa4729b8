package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// IdentityProvider verifies a username/password pair.
type IdentityProvider interface {
	Authenticate(ctx context.Context, username, password string) (Identity, error)
}

// StaticProvider accepts exactly one configured account. It stands in for a
// real directory service behind the same interface.
type StaticProvider struct {
	username     string
	passwordHash string
	identity     Identity
}

func NewStaticProvider(username, password string) (*StaticProvider, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.New("static provider requires a username and password")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &StaticProvider{
		username:     username,
		passwordHash: hash,
		identity: Identity{
			UserID:   uuid.NewSHA1(uuid.NameSpaceOID, []byte(username)).String(),
			Username: username,
		},
	}, nil
}

func (p *StaticProvider) Authenticate(ctx context.Context, username, password string) (Identity, error) {
	if err := ctx.Err(); err != nil {
		return Identity{}, err
	}
	nameOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(p.username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	passErr := CheckPassword(p.passwordHash, password)
	if !nameOK || passErr != nil {
		return Identity{}, ErrInvalidCredentials
	}
	return p.identity, nil
}
