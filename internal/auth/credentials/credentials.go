// Package credentials hashes and verifies passwords with bcrypt.
// It holds no state and never logs or stores plaintext input.
package credentials

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt hash from password.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
