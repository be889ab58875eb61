package catalog

import "context"

// TokenSource yields the bearer token attached to outgoing requests.
// Returning an empty token means the request proceeds unauthenticated;
// that is not an error. Read errors are treated the same way and logged
// at debug level.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource that always yields the same token. The
// empty string yields no token at all.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token(context.Context) (string, error) {
	return string(s), nil
}
