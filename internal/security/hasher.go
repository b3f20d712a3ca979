package security

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// Hasher provides one-way credential hashing for passwords and refresh
// tokens. Verification goes through bcrypt's own comparison; hashes are
// never reconstructed and string-compared.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher at bcrypt's default cost.
func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// Hash hashes a password.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the stored hash.
func (h *Hasher) Verify(hashed, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}

// HashToken hashes a refresh token. Tokens are pre-digested with
// SHA-256 because bcrypt only reads the first 72 bytes of its input and
// a signed token is far longer than that.
func (h *Hasher) HashToken(token string) (string, error) {
	return h.Hash(digest(token))
}

// VerifyToken reports whether the presented token matches the stored hash.
func (h *Hasher) VerifyToken(hashed, token string) bool {
	return h.Verify(hashed, digest(token))
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawStdEncoding.EncodeToString(sum[:])
}
