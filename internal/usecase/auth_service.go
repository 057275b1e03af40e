package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/domain/repository"
	"tourism-service/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const adminKind = "Admin"

// Claims is the payload of an admin bearer token
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResult is returned by a successful login
type LoginResult struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Admin     *entity.Admin `json:"admin"`
}

// AuthService checks admin credentials and issues and verifies bearer tokens
type AuthService struct {
	admins    repository.AdminRepository
	auditor   *Auditor
	validator *Validator
	logger    logger.Logger
	secret    []byte
	expiry    time.Duration
	now       func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService creates an auth service signing HS256 tokens with secret
func NewAuthService(admins repository.AdminRepository, auditor *Auditor, validator *Validator, logger logger.Logger, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		admins:    admins,
		auditor:   auditor,
		validator: validator,
		logger:    logger,
		secret:    []byte(secret),
		expiry:    expiry,
		now:       time.Now,
	}
}

// Login verifies username and password and issues a token. Unknown users,
// inactive users and wrong passwords all fail with ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, ip string, in LoginInput) (*LoginResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := s.validator.Struct(&in); err != nil {
		return nil, err
	}

	admin, err := s.admins.FindActiveByUsername(ctx, in.Username)
	if errors.Is(err, repository.ErrNotFound) {
		// Burn a comparison so unknown usernames take as long as wrong passwords.
		bcrypt.CompareHashAndPassword(s.dummy(), []byte(in.Password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !admin.CheckPassword(in.Password) {
		s.logger.Warn("Failed admin login", "username", in.Username, "ip", ip)
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	if err := s.admins.UpdateLastLogin(ctx, admin.ID.Hex(), now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	admin.LastLogin = &now

	token, expiresAt, err := s.IssueToken(admin)
	if err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, Actor{AdminID: admin.ID.Hex(), IP: ip}, entity.AuditLogin, adminKind, admin.ID.Hex(), "")

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     admin,
	}, nil
}

// IssueToken signs a time-limited token identifying admin
func (s *AuthService) IssueToken(admin *entity.Admin) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.expiry)

	claims := Claims{
		Role: admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, expiresAt, nil
}

// Authenticate resolves an Authorization header value to an active admin
func (s *AuthService) Authenticate(ctx context.Context, header string) (*entity.Admin, error) {
	tokenStr, ok := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	tokenStr = strings.TrimSpace(tokenStr)
	if !ok || tokenStr == "" {
		return nil, ErrNoToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	admin, err := s.admins.FindByID(ctx, claims.Subject)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve admin: %w", err)
	}
	if !admin.IsActive {
		return nil, ErrInvalidToken
	}

	return admin, nil
}

// CreateAdmin registers a new active admin. Only reachable by an
// authenticated admin or the seed command.
func (s *AuthService) CreateAdmin(ctx context.Context, actor Actor, in AdminInput) (*entity.Admin, error) {
	in.normalize()
	if err := s.validator.Struct(&in); err != nil {
		return nil, err
	}

	exists, err := s.admins.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin uniqueness: %w", err)
	}
	if exists {
		return nil, &ConflictError{Message: "Admin with this username or email already exists"}
	}

	now := s.now()
	admin := &entity.Admin{
		Username:  in.Username,
		Email:     in.Email,
		Role:      in.Role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := admin.SetPassword(in.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Message: "Admin with this username or email already exists"}
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Info("Admin created", "adminID", admin.ID.Hex(), "username", admin.Username)
	s.auditor.Record(ctx, actor, entity.AuditCreate, adminKind, admin.ID.Hex(), admin.Username)

	return admin, nil
}

func (s *AuthService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	return s.dummyHash
}
