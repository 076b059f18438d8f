package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/campuskart/campuskart-backend/internal/users"
	pkgAuth "github.com/campuskart/campuskart-backend/pkg/auth"
	"github.com/campuskart/campuskart-backend/pkg/config"
	"github.com/campuskart/campuskart-backend/pkg/db/models"
	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
	"github.com/campuskart/campuskart-backend/pkg/security"
)

const invalidCredentialsMessage = "Invalid credentials"

// Service defines the behavior needed by the auth controller.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Session, error)
	Login(ctx context.Context, req LoginRequest) (*Session, error)
}

type userRepository interface {
	CreateIfAbsent(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type service struct {
	users       userRepository
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user repository required")
	}
	return &service{
		users:       params.UserRepo,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	class := strings.TrimSpace(req.Class)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || email == "" || req.Password == "" || class == "" || phone == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "All fields required")
	}

	if problems := ValidatePasswordPolicy(req.Password); len(problems) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, strings.Join(problems, ", "))
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.CreateIfAbsent(ctx, users.CreateUserDTO{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Class:        class,
		Phone:        phone,
	})
	if errors.Is(err, users.ErrEmailTaken) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Email already exists")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}

	return s.newSession(user)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Email and password required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find user")
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	return s.newSession(user)
}

func (s *service) newSession(user *models.User) (*Session, error) {
	token, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	return &Session{Token: token, User: users.FromModel(user)}, nil
}
