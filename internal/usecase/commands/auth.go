package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"

	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/pkg/jwt"
	"hotel-frontdesk/internal/pkg/password"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStaffNotFound        = errs.New("staff not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrStaffInactive        = errs.New("staff inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	StaffID   uuid.UUID
	Role      staff.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, credentials staff.Credentials) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	// SeedManager creates the first manager account. It does nothing once any
	// staff account exists.
	SeedManager(ctx context.Context, name string, credentials staff.Credentials) (bool, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials staff.Credentials) (*LoginResult, error) {
	member, err := a.validateStaff(ctx, credentials)
	if err != nil {
		return nil, err
	}

	tokens, err := a.issue(member.ID(), member.Role())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Staff().UpdateLastLogin(ctx, member.ID(), a.clock.Now()); updateErr != nil {
			slog.Warn("failed to update last login", "staff_id", member.ID(), "error", updateErr.Error())
		}
		if password.NeedsRehash(member.PasswordHash()) {
			hash, hashErr := password.HashPassword(credentials.Password().Value())
			if hashErr == nil {
				hashErr = tx.Staff().UpdatePasswordHash(ctx, member.ID(), hash)
			}
			if hashErr != nil {
				slog.Warn("failed to upgrade password hash", "staff_id", member.ID(), "error", hashErr.Error())
			}
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "staff_id", member.ID(), "error", err.Error())
	}

	return &LoginResult{
		StaffID:   member.ID(),
		Role:      member.Role(),
		TokenPair: tokens,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	var member *staff.Staff
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		member, err = tx.Staff().FindByID(ctx, claims.StaffID)
		return err
	})
	if err != nil {
		return nil, ErrStaffNotFound
	}
	if !member.IsActive() {
		return nil, ErrStaffInactive
	}

	// Role is re-read from the account, not the old token.
	return a.issue(member.ID(), member.Role())
}

func (a *authCommandsImpl) SeedManager(ctx context.Context, name string, credentials staff.Credentials) (bool, error) {
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return false, err
	}

	created := false
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = false
		n, err := tx.Staff().Count(ctx)
		if err != nil || n > 0 {
			return err
		}
		if name == "" {
			name = "Manager"
		}
		if err := tx.Staff().Insert(ctx, staff.NewStaff(name, credentials.Email(), hash, staff.RoleManager, a.clock.Now())); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil
			}
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if created {
		slog.Info("seeded manager account", "email", credentials.Email().Value())
	}
	return created, nil
}

func (a *authCommandsImpl) issue(id uuid.UUID, role staff.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(id, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(id, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateStaff(ctx context.Context, credentials staff.Credentials) (*staff.Staff, error) {
	var member *staff.Staff
	err := a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		member, err = tx.Staff().FindByEmail(ctx, credentials.Email())
		return err
	})
	if err != nil {
		// Same error as a password mismatch so accounts cannot be enumerated.
		return nil, ErrInvalidCredentials
	}

	if !member.IsActive() {
		return nil, ErrStaffInactive
	}

	if err := password.ComparePassword(member.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return member, nil
}
