package utils

import "strconv"

// PasswordChecksum computes the demo credential transform used for stored
// passwords: a 32-bit multiplicative checksum over the password's runes,
// rendered as a decimal string.
//
// It is one-way in the practical sense but NOT cryptographically secure —
// it exists so the demo can compare credentials without keeping plaintext
// around. Any deployment holding real credentials must replace it with a
// vetted password-hashing primitive.
func PasswordChecksum(password string) string {
	var h int32
	for _, r := range password {
		h = h*31 + int32(r) // wraps on overflow, matching 32-bit semantics
	}
	return strconv.Itoa(int(h))
}
