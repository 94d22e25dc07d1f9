package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviebooking/internal/data/entity"
	"moviebooking/internal/data/repository"
	"moviebooking/internal/dto/request"
	"moviebooking/internal/dto/response"
	"moviebooking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	ForgotPassword(ctx context.Context, username string) error
}

type authService struct {
	repo   *repository.Repository // user + role
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Cek username sudah dipakai
	taken, err := s.repo.User.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: username already taken", ErrConflict)
	}

	// 3. Cek email sudah terdaftar
	taken, err = s.repo.User.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: email already in use", ErrConflict)
	}

	// 4. Resolve roles
	roles, err := s.resolveRoles(ctx, req.Role)
	if err != nil {
		return nil, err
	}

	// 5. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:      req.Username,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber.String(),
		PasswordHash:  hashedPassword,
		Roles:         roles,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username or email already in use", ErrConflict)
		}
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.Strings("roles", user.RoleNames()),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

// resolveRoles maps requested role names to stored roles; no names means USER.
func (s *authService) resolveRoles(ctx context.Context, names []string) ([]entity.Role, error) {
	wanted := []entity.UserRole{entity.RoleUser}
	if len(names) > 0 {
		wanted = wanted[:0]
		seen := make(map[entity.UserRole]bool)
		for _, n := range names {
			r := entity.RoleFromRequest(n)
			if !seen[r] {
				seen[r] = true
				wanted = append(wanted, r)
			}
		}
	}

	roles := make([]entity.Role, 0, len(wanted))
	for _, name := range wanted {
		role, err := s.repo.Role.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if role == nil {
			// roles are seeded at startup, a missing one is a server fault
			s.log.Error("Role not found", zap.String("role", string(name)))
			return nil, fmt.Errorf("role %s not found", name)
		}
		roles = append(roles, *role)
	}

	return roles, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Login failed", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	ttl := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	token, expiresAt, err := utils.GenerateToken(s.config.JWT.Secret, user.Username, user.RoleNames(), ttl)
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err), zap.String("username", user.Username))
		return nil, err
	}

	s.log.Info("User logged in", zap.String("username", user.Username))

	resp := response.LoginToResponse(user, token, expiresAt)
	return &resp, nil
}

// ForgotPassword re-hashes the stored password hash. The caller's new
// password is never read, so the account's old password stops working.
// Kept as is until the intended reset flow is decided.
func (s *authService) ForgotPassword(ctx context.Context, username string) error {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: user not found: %s", ErrNotFound, username)
	}

	rehashed, err := utils.HashPassword(user.PasswordHash)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, rehashed); err != nil {
		return err
	}

	s.log.Info("Password reset", zap.String("username", username))
	return nil
}
