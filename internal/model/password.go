package model

// PasswordHasher hashes and checks user passwords.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Check(password string, hash []byte) bool
}
