package hasher

// NoopPasswordHasher stores passwords as is. Only meant for tests
type NoopPasswordHasher struct{}

func NewNoopPasswordHasher() NoopPasswordHasher {
	return NoopPasswordHasher{}
}

func (h NoopPasswordHasher) Hash(password string) (string, error) {
	return password, nil
}

func (h NoopPasswordHasher) Check(plain, hashed string) (bool, error) {
	return plain == hashed, nil
}
