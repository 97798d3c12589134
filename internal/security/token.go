package security

import "github.com/google/uuid"

// NewSessionToken returns an unguessable opaque bearer token. UUIDv4 carries
// 122 bits from crypto/rand, which is the strength class the session model
// requires; the token has no internal structure worth parsing.
func NewSessionToken() string {
	return uuid.NewString()
}
