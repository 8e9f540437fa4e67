package hasher

// PasswordHasher turns a generated password into a form that can be stored
// in place of the plaintext, and checks a plaintext against it
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Check(plain, hashed string) (bool, error)
}
