package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopstock/shopstock-go/internal/crypto"
	"github.com/shopstock/shopstock-go/internal/model"
	"github.com/shopstock/shopstock-go/internal/repository"
)

var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore is the persistence surface the auth service depends on.
type UserStore interface {
	Create(ctx context.Context, user *model.User, email string) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, id int64, email, profileImage, detail *string) (*model.UserProfile, error)
	Delete(ctx context.Context, id int64) error
}

// AuthService handles registration, login, token verification and account
// management.
type AuthService struct {
	store     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a user with its profile and returns a signed session
// token, so the caller is logged in immediately after signup.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	if req.Username == "" {
		return model.RegisterResponse{}, ErrUsernameRequired
	}
	if req.Password == "" {
		return model.RegisterResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
	}

	if err := s.store.Create(ctx, user, req.Email); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return model.RegisterResponse{}, ErrUsernameTaken
		}
		return model.RegisterResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	return model.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// Login verifies credentials and mints a session token. A missing password,
// unknown username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if req.Password == "" {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	user, err := s.store.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{Token: token}, nil
}

// VerifyToken validates a session token and confirms the referenced user
// still exists, so tokens die with the account. Returns the user ID.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (int64, error) {
	claims, err := crypto.ValidateToken(tokenString, s.jwtSecret)
	if err != nil {
		return 0, ErrInvalidToken
	}

	if _, err := s.store.GetByID(ctx, claims.UserID); err != nil {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// GetProfile retrieves a user joined with its profile.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*model.UserProfile, error) {
	up, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return up, nil
}

// UpdateProfile overwrites the user's profile fields with the request values
// and returns the updated joined row.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req model.UpdateProfileRequest) (*model.UserProfile, error) {
	up, err := s.store.UpdateProfile(ctx, userID, req.Email, req.ProfileImage, req.Detail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return up, nil
}

// DeleteAccount removes the user; the profile row cascades with it.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int64) error {
	return s.store.Delete(ctx, userID)
}
