package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-workbench-api/internal/auth"
	"portfolio-workbench-api/internal/domain"
	"portfolio-workbench-api/internal/metrics"
	"portfolio-workbench-api/internal/repository"
	"portfolio-workbench-api/internal/response"
)

// AuthService handles registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, tokenString string) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	userRepo  repository.UserRepository
	issuer    *auth.TokenIssuer
	blacklist auth.Blacklist
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewAuthService creates a new AuthService. The blacklist may be nil
// when Redis is disabled; logout then only reports success without
// revoking the token early.
func NewAuthService(
	userRepo repository.UserRepository,
	issuer *auth.TokenIssuer,
	blacklist auth.Blacklist,
	logger *zap.Logger,
	m *metrics.Metrics,
) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		issuer:    issuer,
		blacklist: blacklist,
		logger:    logger,
		metrics:   m,
	}
}

// Register creates a new user account with a hashed password.
func (s *authServiceImpl) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to look up user by email", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to register user", err.Error())
	}
	if existing != nil {
		return nil, response.NewAlreadyExistsError(
			fmt.Sprintf("User with email %s already exists", email), "")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to register user", err.Error())
	}

	user := &domain.User{
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to register user", err.Error())
	}

	s.metrics.IncrementEntityCreated("users")
	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email),
	)
	return user, nil
}

// Login verifies the credentials and issues a bearer token.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to look up user by email", zap.Error(err))
		return "", response.NewAppError(response.ErrCodeInternal, "Failed to log in", err.Error())
	}
	if user == nil || !auth.VerifyPassword(password, user.HashedPassword) {
		s.metrics.TrackAuthFailure("bad_credentials")
		return "", response.NewUnauthorizedError("Incorrect email or password", "")
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		s.metrics.TrackTokenOperation("issue", metrics.ResultFailure)
		s.logger.Error("Failed to issue token", zap.Error(err))
		return "", response.NewAppError(response.ErrCodeInternal, "Failed to log in", err.Error())
	}

	s.metrics.TrackTokenOperation("issue", metrics.ResultSuccess)
	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	return token, nil
}

// Logout revokes the token until its natural expiry.
func (s *authServiceImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.issuer.Verify(tokenString)
	if err != nil {
		return response.NewUnauthorizedError("Invalid token", err.Error())
	}

	if s.blacklist == nil || claims.TokenID == "" {
		return nil
	}
	if err := s.blacklist.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		s.metrics.TrackTokenOperation("revoke", metrics.ResultFailure)
		s.logger.Error("Failed to revoke token", zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to log out", err.Error())
	}

	s.metrics.TrackTokenOperation("revoke", metrics.ResultSuccess)
	s.logger.Info("User logged out", zap.String("user_id", claims.UserID.String()))
	return nil
}

// CurrentUser loads the active user behind a verified token.
func (s *authServiceImpl) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, response.NewNotFoundError(
			fmt.Sprintf("User with ID %s not found", userID), "")
	}
	return user, nil
}
