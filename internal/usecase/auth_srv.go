package usecase

import (
	"context"
	"fmt"
	"time"

	"awami-saholat/internal/data/entity"
	"awami-saholat/internal/data/repository"
	"awami-saholat/internal/dto/request"
	"awami-saholat/internal/dto/response"
	"awami-saholat/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Nomor demo yang sama untuk setiap login tanpa signup.
const demoPhone = "+44 7307 354561"

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*response.AuthResponse, error)

	// Restore rehydrates identity+role dari snapshot saat startup.
	// Satu-satunya state yang selamat dari restart; bookings tidak.
	Restore(ctx context.Context) error
}

type authService struct {
	repo *repository.Repository // session + snapshot + booking repos
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		log:  log.With(zap.String("service", "auth")),
	}
}

// Login menerima pasangan email/password non-empty apa saja - tidak ada
// credential check, sesuai sifat demo. Identity lama diganti tanpa syarat.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	role := entity.UserRole(req.UserType)
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:  utils.NameFromEmail(req.Email),
		Email: req.Email,
		Phone: demoPhone,
	}

	if err := s.setIdentity(ctx, user, role); err != nil {
		return nil, err
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)))

	return response.AuthToResponse(user, role), nil
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	role := entity.UserRole(req.UserType)
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	// Profile fields hanya relevan untuk worker
	if role == entity.RoleWorker {
		user.ServiceType = req.ServiceType
		user.City = req.City
		user.Area = req.Area
	}

	if err := s.setIdentity(ctx, user, role); err != nil {
		return nil, err
	}

	s.log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)))

	return response.AuthToResponse(user, role), nil
}

// Logout clears identity, role dan seluruh booking list, lalu menghapus
// snapshot. Idempotent - aman dipanggil berulang kali.
func (s *authService) Logout(ctx context.Context) error {
	s.repo.Session.ClearIdentity()
	s.repo.Booking.Clear()

	if err := s.repo.Snapshot.Clear(ctx); err != nil {
		s.log.Error("Failed to clear identity snapshot", zap.Error(err))
		return fmt.Errorf("clear snapshot: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) Me(ctx context.Context) (*response.AuthResponse, error) {
	user, role, ok := s.repo.Session.Current()
	if !ok {
		return nil, fmt.Errorf("login required")
	}
	return response.AuthToResponse(user, role), nil
}

func (s *authService) Restore(ctx context.Context) error {
	user, role, err := s.repo.Snapshot.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	if user == nil {
		return nil
	}

	s.repo.Session.SetIdentity(user, role)
	s.log.Info("Restored identity from snapshot",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)))
	return nil
}

// setIdentity applies the in-memory transition dulu, lalu persistence
// sebagai side effect terpisah. Transition-nya sendiri tidak bisa gagal.
func (s *authService) setIdentity(ctx context.Context, user *entity.User, role entity.UserRole) error {
	s.repo.Session.SetIdentity(user, role)

	if err := s.repo.Snapshot.Save(ctx, user, role); err != nil {
		s.log.Error("Failed to persist identity snapshot",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}
