package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest from the given plaintext
// password using the default cost.
//
// bcrypt embeds a random salt in every digest, so two calls with the same
// input produce different — but mutually verifiable — digests. The plaintext
// is never recoverable from the returned value.
//
// Returns an error if the password exceeds bcrypt's 72-byte input limit.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt digest.
//
// A malformed digest never produces an error for the caller to handle:
// any comparison failure, including an unparsable digest, yields false.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
