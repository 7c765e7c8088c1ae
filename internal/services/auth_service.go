package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medbridge/internal/models"
	"medbridge/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Errors raised intentionally by the auth service. Both login failure
// halves map to the same ErrInvalidCredentials so callers cannot tell
// an unknown email from a wrong password.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenClaims is the identity a verified token carries.
type TokenClaims struct {
	ID   string
	Role string
}

// AuthService handles registration, login and bearer-token issuance.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which a token is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Register creates a new user account and returns a signed token for
// it. Emails are lowercased before any lookup or insert so uniqueness
// is case-insensitive. The pre-insert existence check is advisory; the
// store's unique email index is the arbiter, so a concurrent duplicate
// registration still fails with ErrUserExists.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return "", ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(hashedPassword),
		Role:      models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return "", ErrUserExists
		}
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	return s.IssueToken(user.ID.Hex(), user.Role)
}

// Login authenticates a user and returns a signed token if successful.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.IssueToken(user.ID.Hex(), user.Role)
}

// IssueToken signs a token embedding the user's id and role under a
// nested "user" claim, expiring one day after issuance.
func (s *AuthService) IssueToken(id, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]any{
			"id":   id,
			"role": role,
		},
		"exp": now.Add(s.tokenDurat).Unix(),
		"iat": now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a token, returning the embedded
// identity if the signature checks out and the token has not expired.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userClaim, ok := claims["user"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid token: missing user claim")
	}
	id, _ := userClaim["id"].(string)
	role, _ := userClaim["role"].(string)
	if id == "" {
		return nil, fmt.Errorf("invalid token: missing user id")
	}

	return &TokenClaims{ID: id, Role: role}, nil
}
