package auth

import (
	"log/slog"

	"credgate/config"
	"credgate/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HasherParams holds dependencies for NewPasswordHasher, injected by Fx.
type HasherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPasswordHasher builds the PasswordHasher selected by auth.algorithm.
func NewPasswordHasher(params HasherParams) (service.PasswordHasher, error) {
	authCfg := params.Config.Auth
	if authCfg == nil {
		return NewBcryptHasherWithCost(config.DefaultBcryptCost, params.Logger), nil
	}

	switch authCfg.Algorithm {
	case "", config.AlgorithmBcrypt:
		return NewBcryptHasherWithCost(authCfg.BcryptCost, params.Logger), nil
	case config.AlgorithmArgon2ID:
		argonParams := DefaultArgon2Params
		if a := authCfg.Argon2; a != nil {
			argonParams = Argon2Params{
				Memory:      a.Memory,
				Time:        a.Time,
				Parallelism: a.Parallelism,
				SaltLength:  a.SaltLength,
				KeyLength:   a.KeyLength,
			}
		}

		return NewArgon2Hasher(argonParams, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown password hashing algorithm: %s", authCfg.Algorithm)
	}
}
