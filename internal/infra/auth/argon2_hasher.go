package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"strings"

	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

const argon2Algorithm = "argon2id"

// Argon2Params are the argon2id work parameters. Memory is in KiB.
type Argon2Params struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params follows the RFC 9106 second recommended option.
var DefaultArgon2Params = Argon2Params{
	Memory:      64 * 1024,
	Time:        1,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// argon2Hasher implements PasswordHasher with argon2id, encoding results as PHC strings:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
type argon2Hasher struct {
	params Argon2Params
	logger *slog.Logger
}

// NewArgon2Hasher returns an argon2id PasswordHasher.
func NewArgon2Hasher(params Argon2Params, logger *slog.Logger) service.PasswordHasher {
	return &argon2Hasher{params: params, logger: logger}
}

// Hash derives an argon2id key from the password and a fresh random salt.
func (h *argon2Hasher) Hash(password string) ([]byte, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "argon2id salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	encoded := fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Algorithm,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return []byte(encoded), nil
}

// Check re-derives the key with the parameters and salt stored in hash.
func (h *argon2Hasher) Check(password string, hash []byte) bool {
	params, salt, key, err := decodeArgon2Hash(string(hash))
	if err != nil {
		reportMalformedHash(h.logger, argon2Algorithm, err)

		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Parallelism, params.KeyLength)

	return subtle.ConstantTimeCompare(candidate, key) == 1
}

func decodeArgon2Hash(encoded string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argon2Algorithm {
		return params, nil, nil, errors.New("not an argon2id PHC string")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, errors.Wrap(err, "version")
	}
	if version != argon2.Version {
		return params, nil, nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Parallelism); err != nil {
		return params, nil, nil, errors.Wrap(err, "parameters")
	}
	if params.Memory == 0 || params.Time == 0 || params.Parallelism == 0 {
		return params, nil, nil, errors.New("zero argon2 parameter")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, errors.Wrap(err, "salt")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, errors.Wrap(err, "key")
	}
	if len(key) == 0 {
		return params, nil, nil, errors.New("empty key")
	}

	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(key))

	return params, salt, key, nil
}
