// Package auth hashes and checks account passwords.
package auth

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor for new hashes. Existing hashes keep the
// cost they were created with.
var Cost = bcrypt.DefaultCost

// ErrPasswordTooLong is returned for passwords bcrypt would truncate.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// missingUserHash stands in for the stored hash of an unknown account.
const missingUserHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e"

// Hash returns the bcrypt hash of password.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Check reports whether password matches hash. A malformed hash never
// matches.
func Check(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckMissing runs a comparison against a fixed hash and discards the
// result, so a login for an unknown username takes as long as one with a
// wrong password.
func CheckMissing(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(missingUserHash), []byte(password))
}
