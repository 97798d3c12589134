package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is fixed; raising it invalidates no existing digests because the
// cost is encoded in each digest.
const bcryptCost = 10

func HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// VerifyPassword reports whether password matches the stored digest. A
// malformed digest counts as a mismatch rather than an error so callers can
// treat every negative outcome uniformly.
func VerifyPassword(password string, digest []byte) bool {
	return bcrypt.CompareHashAndPassword(digest, []byte(password)) == nil
}
