// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "credgate/internal/delivery/context"
	"credgate/internal/domain/entity"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/policy"
	"credgate/internal/domain/repository"
	"credgate/internal/domain/service"
	"credgate/internal/errors"
	"credgate/internal/usecase"

	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	credentialRepo    repository.CredentialRepository
	hasher            service.PasswordHasher
	usernameValidator *policy.UsernameValidator
	passwordValidator *policy.PasswordValidator
	logger            *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	CredentialRepo    repository.CredentialRepository
	Hasher            service.PasswordHasher
	UsernameValidator *policy.UsernameValidator
	PasswordValidator *policy.PasswordValidator
	Logger            *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		credentialRepo:    params.CredentialRepo,
		hasher:            params.Hasher,
		usernameValidator: params.UsernameValidator,
		passwordValidator: params.PasswordValidator,
		logger:            params.Logger,
	}
}

// log returns a session-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *credentialService) CheckUsername(ctx context.Context, username string) error {
	if _, err := srv.usernameValidator.Validate(username); err != nil {
		srv.log(ctx).Debug("Username rejected", slog.Any("error", err))

		return errors.Wrap(err, "username rejected")
	}

	return nil
}

// Enroll validates both parts of the credential and stores it. Nothing is
// written unless every rule passed.
func (srv *credentialService) Enroll(ctx context.Context, input *usecase.EnrollInput) (*usecase.EnrollOutput, error) {
	if err := srv.CheckUsername(ctx, input.Username); err != nil {
		return nil, err
	}

	existingHashes, err := srv.credentialRepo.ListPasswordHashes(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list password hashes", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "failed to load existing credentials")
	}

	if err := srv.passwordValidator.Validate(input.Password, existingHashes); err != nil {
		srv.log(ctx).Debug("Password rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "password rejected")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during enrollment", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during enrollment")
	}

	credential := &entity.Credential{
		Username:     policy.FoldCase(input.Username),
		PasswordHash: hash,
	}

	if err := srv.credentialRepo.Create(ctx, credential); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			srv.log(ctx).Info("Username already enrolled", slog.String("username", credential.Username))

			return nil, domainerrors.ErrUsernameTaken.WrapMessage("failed to enroll credential")
		}

		srv.log(ctx).Error("Failed to store credential", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "failed to store credential")
	}

	srv.log(ctx).Info("Credential enrolled", slog.String("username", credential.Username), slog.Any("credentialID", credential.ID))

	return &usecase.EnrollOutput{
		Username:     credential.Username,
		CredentialID: credential.ID,
	}, nil
}

// Verify looks the credential up by the case-folded username, without digit
// substitution, and checks the password against its stored hash.
func (srv *credentialService) Verify(ctx context.Context, input *usecase.VerifyInput) (*usecase.VerifyOutput, error) {
	username := policy.FoldCase(input.Username)

	credential, err := srv.credentialRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Info("Verification failed: unknown username", slog.String("username", username))

			return nil, domainerrors.ErrCredentialNotFound.WrapMessage("failed to verify credential")
		}

		srv.log(ctx).Error("Failed to find credential", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "failed to find credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Info("Verification failed: password mismatch", slog.String("username", username))

		return nil, domainerrors.ErrPasswordMismatch.WrapMessage("failed to verify credential")
	}

	srv.log(ctx).Info("Credential verified", slog.String("username", credential.Username))

	return &usecase.VerifyOutput{Username: credential.Username}, nil
}
