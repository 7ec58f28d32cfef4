package auth

import (
	"github.com/spec-kit/job-board-service/internal/domain"
)

// SeedUser pairs a fixed account with its plaintext startup password.
type SeedUser struct {
	Username string
	Password string
	Role     domain.Role
}

// CredentialStore is the static user registry. Passwords are hashed
// once at construction; the store is read-only afterwards and safe for
// concurrent lookups.
type CredentialStore struct {
	byUsername map[string]domain.Credential
}

// NewCredentialStore hashes each seed password and builds the registry.
func NewCredentialStore(seed []SeedUser, bcryptCost int) (*CredentialStore, error) {
	byUsername := make(map[string]domain.Credential, len(seed))
	for _, u := range seed {
		hash, err := HashPassword(u.Password, bcryptCost)
		if err != nil {
			return nil, err
		}
		byUsername[u.Username] = domain.Credential{
			Username:     u.Username,
			PasswordHash: hash,
			Role:         u.Role,
		}
	}
	return &CredentialStore{byUsername: byUsername}, nil
}

// Lookup resolves a username to its credential by exact match.
func (s *CredentialStore) Lookup(username string) (domain.Credential, bool) {
	cred, ok := s.byUsername[username]
	return cred, ok
}
