package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/move-labels/config"
	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a session token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// sessionClaims signs dto.SessionClaims as a JWT.
type sessionClaims struct {
	dto.SessionClaims
	jwt.RegisteredClaims
}

// AuthService opens and checks sessions.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (*model.SessionUser, error)
	SeedAdmin(ctx context.Context, username, password string) (bool, error)
}

// AuthServiceImpl implements AuthService with bcrypt passwords and HS256
// session tokens.
type AuthServiceImpl struct {
	users  repository.UserRepositoryInterface
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService creates an authentication service.
func NewAuthService(users repository.UserRepositoryInterface, cfg config.AuthConfig) *AuthServiceImpl {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &AuthServiceImpl{
		users:  users,
		secret: []byte(cfg.JWTSecretKey),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Login checks the credentials and returns a signed session token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	if s.users == nil {
		return nil, ErrRepositoryNotConfigured
	}
	username = strings.TrimSpace(username)

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !user.Active {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.sign(user)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.UserResponse{ID: user.ID.Hex(), Username: user.Username},
	}, nil
}

func (s *AuthServiceImpl) sign(user *model.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := sessionClaims{
		SessionClaims: dto.SessionClaims{UserID: user.ID.Hex(), Username: user.Username},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	return token, expiresAt, err
}

// ValidateToken verifies a session token. When a user store is configured
// the account must still exist and be active.
func (s *AuthServiceImpl) ValidateToken(ctx context.Context, token string) (*model.SessionUser, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	if s.users == nil {
		return &model.SessionUser{ID: claims.UserID, Username: claims.Username}, nil
	}
	oid, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !user.Active {
		return nil, ErrInvalidToken
	}
	return &model.SessionUser{ID: user.ID.Hex(), Username: user.Username}, nil
}

// SeedAdmin creates the first account unless it already exists. It reports
// whether a user was created.
func (s *AuthServiceImpl) SeedAdmin(ctx context.Context, username, password string) (bool, error) {
	if s.users == nil {
		return false, ErrRepositoryNotConfigured
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, errors.New("admin username and password are required")
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	err = s.users.Create(ctx, &model.User{Username: username, PasswordHash: string(hash), Active: true})
	if errors.Is(err, repository.ErrDuplicateUsername) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	log.Info().Str("username", username).Msg("admin user created")
	return true, nil
}
