// Package memory provides in-process implementations of the repository interfaces.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"credgate/internal/domain/entity"
	"credgate/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// credentialRepository keeps credentials in a map keyed by lower-cased username.
// Readers share the lock; Create holds it exclusively across the duplicate check and the insert.
type credentialRepository struct {
	mu          sync.RWMutex
	credentials map[string]*entity.Credential
	now         func() time.Time
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository() repository.CredentialRepository {
	return &credentialRepository{
		credentials: make(map[string]*entity.Credential),
		now:         time.Now,
	}
}

func credentialKey(username string) string {
	return strings.ToLower(username)
}

// FindByUsername returns a copy of the credential enrolled under username.
func (repo *credentialRepository) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	credential, ok := repo.credentials[credentialKey(username)]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}

	return credential.Clone(), nil
}

// ListPasswordHashes returns copies of every stored hash.
func (repo *credentialRepository) ListPasswordHashes(ctx context.Context) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	hashes := make([][]byte, 0, len(repo.credentials))
	for _, credential := range repo.credentials {
		hashes = append(hashes, append([]byte(nil), credential.PasswordHash...))
	}

	return hashes, nil
}

// Create inserts credential unless its username is already enrolled.
// ID and CreatedAt are filled in when unset.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if credential == nil {
		return errors.New("credential is nil")
	}

	key := credentialKey(credential.Username)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.credentials[key]; exists {
		return repository.ErrUsernameTaken
	}

	if credential.ID == uuid.Nil {
		credential.ID = uuid.New()
	}
	if credential.CreatedAt.IsZero() {
		credential.CreatedAt = repo.now()
	}

	repo.credentials[key] = credential.Clone()

	return nil
}

// Count returns the number of stored credentials.
func (repo *credentialRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.credentials), nil
}
