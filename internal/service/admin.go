package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/pizzeria-service/config"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
)

// AdminRole is the only role an admin token carries.
const AdminRole = "admin"

// Authenticator checks admin credentials.
type Authenticator interface {
	Authenticate(username, password string) bool
}

// StaticCredentials is an Authenticator for one fixed username and password.
// The password is kept only as a bcrypt hash.
type StaticCredentials struct {
	username string
	hash     []byte
}

// NewStaticCredentials hashes password and returns the authenticator.
func NewStaticCredentials(username, password string) (*StaticCredentials, error) {
	if username == "" || password == "" {
		return nil, errors.New("admin username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &StaticCredentials{username: username, hash: hash}, nil
}

// Authenticate compares both fields; the username compare is constant time.
func (s *StaticCredentials) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(s.hash, []byte(password)) == nil
	return userOK && passOK
}

// AdminService provides admin login and token validation.
type AdminService interface {
	Login(ctx context.Context, username, password string) (*dto.AdminToken, error)
	ValidateToken(ctx context.Context, token string) (*dto.AdminClaims, error)
}

type adminTokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuthService issues HS256 admin tokens after checking credentials.
type AdminAuthService struct {
	auth     Authenticator
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

var _ AdminService = (*AdminAuthService)(nil)

// NewAdminAuthService creates the admin service. A zero tokenTTL issues
// tokens without expiry.
func NewAdminAuthService(auth Authenticator, secret string, tokenTTL time.Duration) *AdminAuthService {
	return &AdminAuthService{
		auth:     auth,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// NewAdminAuthServiceFromConfig builds static credentials and the service
// from the admin configuration.
func NewAdminAuthServiceFromConfig(cfg config.AdminConfig) (*AdminAuthService, error) {
	creds, err := NewStaticCredentials(cfg.Username, cfg.Password)
	if err != nil {
		return nil, err
	}
	return NewAdminAuthService(creds, cfg.JWTSecret, cfg.TokenTTL), nil
}

// Login returns a signed admin token or ErrInvalidCredentials.
func (s *AdminAuthService) Login(_ context.Context, username, password string) (*dto.AdminToken, error) {
	if !s.auth.Authenticate(username, password) {
		return nil, ErrInvalidCredentials
	}

	issuedAt := s.now()
	claims := adminTokenClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}

	result := &dto.AdminToken{Username: username}
	if s.tokenTTL > 0 {
		expiresAt := issuedAt.Add(s.tokenTTL)
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
		result.ExpiresAt = &expiresAt
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign admin token: %w", err)
	}
	result.Token = signed
	return result, nil
}

// ValidateToken parses token and returns its claims.
func (s *AdminAuthService) ValidateToken(_ context.Context, token string) (*dto.AdminClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &adminTokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*adminTokenClaims)
	if !ok || !parsed.Valid || claims.Role != AdminRole {
		return nil, ErrInvalidToken
	}
	return &dto.AdminClaims{Username: claims.Subject, Role: claims.Role}, nil
}
