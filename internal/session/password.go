package session

import "golang.org/x/crypto/bcrypt"

// The demo accepts a single fixed password. It is still held as a
// bcrypt hash so the comparison path matches what a real credential
// check would do.
const demoCost = bcrypt.MinCost

// hashPassword hashes a password using bcrypt.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), demoCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword compares a password with its hash.
func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
