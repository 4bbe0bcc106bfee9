package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

type stubUserRepo struct {
	createFn      func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn    func(ctx context.Context, id string) (*domain.User, error)
	updateFn      func(ctx context.Context, user *domain.User) (*domain.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.updateFn(ctx, user)
}

const testSecret = "test-secret"

func TestAuthService_Register_Success(t *testing.T) {
	var created *domain.User
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			user.ID = "user-1"
			created = user
			return user, nil
		},
	}

	svc := NewAuthService(repo, testSecret, time.Hour)
	token, user, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "user-1" {
		t.Fatalf("expected persisted user, got %+v", user)
	}
	if created.Role != domain.RoleUser || created.PreferredCurrency != domain.CurrencyUSD {
		t.Fatalf("missing defaults: %+v", created)
	}
	if created.PasswordHash == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("invalid token: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["user_id"] != "user-1" {
		t.Fatalf("expected user_id claim, got %v", claims)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: email}, nil
		},
	}

	svc := NewAuthService(repo, testSecret, time.Hour)
	if _, _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret123"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: email, PasswordHash: string(hash)}, nil
		},
	}

	svc := NewAuthService(repo, testSecret, time.Hour)
	token, user, err := svc.Login(context.Background(), "ada@example.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" || user.ID != "user-1" {
		t.Fatalf("unexpected result: token=%q user=%+v", token, user)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: email, PasswordHash: string(hash)}, nil
		},
	}

	svc := NewAuthService(repo, testSecret, time.Hour)
	if _, _, err := svc.Login(context.Background(), "ada@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	// Unknown email must not read differently from a wrong password.
	svc := NewAuthService(repo, testSecret, time.Hour)
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_UpdateProfile_PartialPatch(t *testing.T) {
	stored := &domain.User{
		ID:                "user-1",
		SavingGoal:        100,
		SavingGoalType:    domain.GoalMonthly,
		MonthlyBudget:     500,
		PreferredCurrency: domain.CurrencyUSD,
	}
	repo := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return stored, nil
		},
		updateFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			return user, nil
		},
	}

	budget := 2000.0
	svc := NewAuthService(repo, testSecret, time.Hour)
	updated, err := svc.UpdateProfile(context.Background(), "user-1", ports.UpdateProfileInput{MonthlyBudget: &budget})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.MonthlyBudget != 2000 {
		t.Fatalf("budget not patched: %+v", updated)
	}
	if updated.SavingGoal != 100 || updated.PreferredCurrency != domain.CurrencyUSD {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.UpdatedAt.IsZero() {
		t.Fatal("UpdatedAt not refreshed")
	}
}
