package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt ignores input past 72 bytes; truncate explicitly so hashing and
// verification agree on what was hashed.
const maxPasswordBytes = 72

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	raw := []byte(password)
	if len(raw) > maxPasswordBytes {
		raw = raw[:maxPasswordBytes]
	}
	hashed, err := bcrypt.GenerateFromPassword(raw, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash.
func CheckPassword(password, hashed string) bool {
	raw := []byte(password)
	if len(raw) > maxPasswordBytes {
		raw = raw[:maxPasswordBytes]
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), raw) == nil
}
