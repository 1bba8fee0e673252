package cloudflare

import (
	"errors"
	"net/http"
)

// ErrNoCredentials is returned when neither an API token nor an email and
// API key pair is available.
var ErrNoCredentials = errors.New("no valid credentials provided, set an API token or email and API key")

// Credentials injects authentication into an API request.
type Credentials interface {
	apply(req *http.Request)

	// String names the credential kind for operator-facing output.
	String() string
}

// TokenAuth authenticates with a scoped API token.
type TokenAuth struct {
	Token string
}

func (a TokenAuth) apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.Token)
}

func (a TokenAuth) String() string {
	return "API token"
}

// KeyAuth authenticates with the account email and global API key.
type KeyAuth struct {
	Email string
	Key   string
}

func (a KeyAuth) apply(req *http.Request) {
	req.Header.Set("X-Auth-Email", a.Email)
	req.Header.Set("X-Auth-Key", a.Key)
}

func (a KeyAuth) String() string {
	return "API key and email"
}

// CredentialsFrom picks the authentication method from the available
// values. A token always wins over email and key.
func CredentialsFrom(token, email, apiKey string) (Credentials, error) {
	switch {
	case token != "":
		return TokenAuth{Token: token}, nil
	case email != "" && apiKey != "":
		return KeyAuth{Email: email, Key: apiKey}, nil
	default:
		return nil, ErrNoCredentials
	}
}
