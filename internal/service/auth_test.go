package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/casaluna/hotel/api/internal/model"
	"github.com/casaluna/hotel/api/pkg/jwt"
)

// Mock implementations

type mockUserRepo struct {
	byEmail map[string]*model.User
	byID    map[int64]*model.User
	getErr  error
	nextID  int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byEmail: make(map[string]*model.User),
		byID:    make(map[int64]*model.User),
	}
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byEmail[email], nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byID[id], nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.byEmail[user.Email] = user
	m.byID[user.ID] = user
	return user, nil
}

type mockExternalUserRepo struct {
	byEmail map[string]*model.ExternalUser
	byID    map[int64]*model.ExternalUser
	nextID  int64
}

func newMockExternalUserRepo() *mockExternalUserRepo {
	return &mockExternalUserRepo{
		byEmail: make(map[string]*model.ExternalUser),
		byID:    make(map[int64]*model.ExternalUser),
	}
}

func (m *mockExternalUserRepo) List(ctx context.Context) ([]*model.ExternalUser, error) {
	users := make([]*model.ExternalUser, 0, len(m.byID))
	for _, u := range m.byID {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockExternalUserRepo) GetByEmail(ctx context.Context, email string) (*model.ExternalUser, error) {
	return m.byEmail[email], nil
}

func (m *mockExternalUserRepo) GetByID(ctx context.Context, id int64) (*model.ExternalUser, error) {
	return m.byID[id], nil
}

func (m *mockExternalUserRepo) Create(ctx context.Context, u *model.ExternalUser) (*model.ExternalUser, error) {
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return u, nil
}

func (m *mockExternalUserRepo) SetActive(ctx context.Context, id int64, active bool) (*model.ExternalUser, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	u.IsActive = active
	return u, nil
}

func (m *mockExternalUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	u, ok := m.byID[id]
	if !ok {
		return false, nil
	}
	delete(m.byEmail, u.Email)
	delete(m.byID, id)
	return true, nil
}

// Test helper to create auth service with mocks

func setupAuthService(t *testing.T) (*AuthService, *mockUserRepo, *mockExternalUserRepo) {
	t.Helper()

	userRepo := newMockUserRepo()
	externalRepo := newMockExternalUserRepo()
	tokens := jwt.NewService(jwt.Config{
		Secret:     []byte("test-secret-that-is-long-enough!"),
		Issuer:     "test-issuer",
		Expiration: 15 * time.Minute,
	})

	return NewAuthService(userRepo, externalRepo, tokens), userRepo, externalRepo
}

func seedUser(t *testing.T, repo *mockUserRepo, email, password string, role model.UserRole) *model.User {
	t.Helper()
	hash, err := hashPassword(password)
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	user, err := repo.Create(context.Background(), &model.User{
		Email:     email,
		Password:  hash,
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	})
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return user
}

// Tests

func TestAuthService_Login_Success(t *testing.T) {
	authService, userRepo, _ := setupAuthService(t)
	ctx := context.Background()

	seedUser(t, userRepo, "admin@casaluna.hotel", "password123", model.UserRoleAdmin)

	result, err := authService.Login(ctx, LoginRequest{
		Email:    "admin@casaluna.hotel",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token == "" {
		t.Error("expected token to be issued")
	}
	if result.User.Email != "admin@casaluna.hotel" {
		t.Errorf("expected email admin@casaluna.hotel, got %s", result.User.Email)
	}
}

func TestAuthService_Login_EmailCaseInsensitive(t *testing.T) {
	authService, userRepo, _ := setupAuthService(t)
	ctx := context.Background()

	seedUser(t, userRepo, "admin@casaluna.hotel", "password123", model.UserRoleAdmin)

	_, err := authService.Login(ctx, LoginRequest{
		Email:    "  Admin@CasaLuna.Hotel ",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login with mixed-case email failed: %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	authService, userRepo, _ := setupAuthService(t)
	ctx := context.Background()

	seedUser(t, userRepo, "admin@casaluna.hotel", "password123", model.UserRoleAdmin)

	_, err := authService.Login(ctx, LoginRequest{
		Email:    "admin@casaluna.hotel",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	authService, _, _ := setupAuthService(t)
	ctx := context.Background()

	// Unknown email and bad password must be indistinguishable.
	_, err := authService.Login(ctx, LoginRequest{
		Email:    "nobody@casaluna.hotel",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ExternalLogin_DisabledAccount(t *testing.T) {
	authService, _, externalRepo := setupAuthService(t)
	ctx := context.Background()

	hash, _ := hashPassword("password123")
	externalRepo.Create(ctx, &model.ExternalUser{
		Email:    "worker@casaluna.hotel",
		Password: hash,
		IsActive: false,
	})

	_, err := authService.ExternalLogin(ctx, LoginRequest{
		Email:    "worker@casaluna.hotel",
		Password: "password123",
	})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAuthService_ExternalLogin_Success(t *testing.T) {
	authService, _, externalRepo := setupAuthService(t)
	ctx := context.Background()

	hash, _ := hashPassword("password123")
	externalRepo.Create(ctx, &model.ExternalUser{
		Email:    "worker@casaluna.hotel",
		Password: hash,
		IsActive: true,
	})

	result, err := authService.ExternalLogin(ctx, LoginRequest{
		Email:    "worker@casaluna.hotel",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("ExternalLogin failed: %v", err)
	}
	if result.Token == "" {
		t.Error("expected token to be issued")
	}
}

func TestAuthService_Me(t *testing.T) {
	authService, userRepo, _ := setupAuthService(t)
	ctx := context.Background()

	user := seedUser(t, userRepo, "admin@casaluna.hotel", "password123", model.UserRoleAdmin)

	got, err := authService.Me(ctx, user.ID)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, got.ID)
	}

	if _, err := authService.Me(ctx, 9999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"test@example.com", true},
		{"a@b.co", true},
		{"", false},
		{"testexample.com", false},
		{"test@", false},
		{"@example.com", false},
		{"test@example", false},
	}

	for _, tt := range tests {
		if got := isValidEmail(tt.email); got != tt.want {
			t.Errorf("isValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
