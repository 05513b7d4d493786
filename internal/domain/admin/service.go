package admin

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"reinsure/internal/pkg/jwt"
	"reinsure/internal/pkg/metrics"
)

type Service struct {
	repo    AdminRepository
	jwt     *jwt.Service
	metrics *metrics.Metrics
}

func NewService(repo AdminRepository, jwtService *jwt.Service, m *metrics.Metrics) *Service {
	return &Service{repo: repo, jwt: jwtService, metrics: m}
}

// LoginResult is returned to a successfully authenticated admin.
type LoginResult struct {
	Token string  `json:"token"`
	Admin Profile `json:"admin"`
}

// Login checks credentials and issues a token. An unknown email and a
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	admin, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrAdminNotFound) {
		CheckPassword(string(dummyHash), password)
		s.metrics.LoginAttempt("failure")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !CheckPassword(admin.PasswordHash, password) {
		s.metrics.LoginAttempt("failure")
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(admin.ID.String())
	if err != nil {
		return nil, err
	}

	slog.Info("admin logged in", "admin_id", admin.ID)
	s.metrics.LoginAttempt("success")
	return &LoginResult{Token: token, Admin: admin.Profile()}, nil
}

// Register creates a new admin with role "admin".
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*Admin, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || req.Password == "" || name == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, ErrAdminNotFound) {
		return nil, err
	}

	admin := &Admin{
		Email: email,
		Name:  name,
		Role:  RoleAdmin,
	}
	if err := HashPasswordIfChanged(admin, req.Password); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}

	slog.Info("admin registered", "admin_id", admin.ID, "email", admin.Email)
	return admin, nil
}

// GetAdminByID resolves a token subject to a live admin.
func (s *Service) GetAdminByID(ctx context.Context, id string) (*Admin, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrAdminNotFound
	}
	return s.repo.GetByID(ctx, uid)
}

// EnsureBootstrapAdmin creates the first admin unless one with email
// already exists. The bool reports whether an admin was created.
func (s *Service) EnsureBootstrapAdmin(ctx context.Context, email, password, name string) (*Admin, bool, error) {
	existing, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrAdminNotFound) {
		return nil, false, err
	}

	admin, err := s.Register(ctx, &RegisterRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return nil, false, err
	}
	return admin, true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
