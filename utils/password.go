package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password for storage. Never store plaintext.
// bcrypt.DefaultCost is 10, the conventional cost factor.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword returns nil if plain matches the stored bcrypt hash.
func CheckPassword(plain, hashed string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
