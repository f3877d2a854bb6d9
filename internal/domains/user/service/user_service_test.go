package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"book-library-api/internal/domains/user"
	"book-library-api/internal/infrastructure/email"
	"book-library-api/pkg/jwt"
)

type stubUserRepository struct {
	users      map[int64]*user.User
	nextID     int64
	resetCodes map[string]*user.ResetCode
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{
		users:      make(map[int64]*user.User),
		nextID:     1,
		resetCodes: make(map[string]*user.ResetCode),
	}
}

func (r *stubUserRepository) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return user.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	r.nextID++
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepository) GetByID(_ context.Context, id int64) (*user.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (r *stubUserRepository) GetByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *stubUserRepository) GetByEmail(_ context.Context, emailAddr string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == emailAddr {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *stubUserRepository) UpdateData(_ context.Context, u *user.User) error {
	existing, ok := r.users[u.ID]
	if !ok {
		return user.ErrUserNotFound
	}
	existing.Username = u.Username
	existing.Email = u.Email
	return nil
}

func (r *stubUserRepository) UpdatePassword(_ context.Context, id int64, hash string) error {
	existing, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	existing.Password = hash
	return nil
}

func (r *stubUserRepository) CreateResetCode(_ context.Context, code *user.ResetCode) error {
	code.ID = int64(len(r.resetCodes) + 1)
	r.resetCodes[code.HashCode] = code
	return nil
}

func (r *stubUserRepository) GetResetCode(_ context.Context, hashCode string) (*user.ResetCode, error) {
	code, ok := r.resetCodes[hashCode]
	if !ok || code.ExpiresAt.Before(time.Now()) {
		return nil, user.ErrInvalidResetCode
	}
	return code, nil
}

func (r *stubUserRepository) DeleteResetCode(_ context.Context, id int64) error {
	for hash, code := range r.resetCodes {
		if code.ID == id {
			delete(r.resetCodes, hash)
		}
	}
	return nil
}

type stubEmailService struct {
	sent []email.ResetPasswordData
}

func (s *stubEmailService) SendResetPasswordEmail(_ context.Context, data email.ResetPasswordData) error {
	s.sent = append(s.sent, data)
	return nil
}

func setup() (*stubUserRepository, *stubEmailService, user.Service, *jwt.Manager) {
	repo := newStubUserRepository()
	mail := &stubEmailService{}
	manager := jwt.NewManager("test-secret", 15)
	svc := NewUserService(repo, manager, mail, "http://localhost:8080")
	return repo, mail, svc, manager
}

func register(t *testing.T, svc user.Service) string {
	t.Helper()
	token, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	return token
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	repo, _, svc, manager := setup()

	token := register(t, svc)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)

	stored := repo.users[1]
	assert.NotEqual(t, "secret1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	_, _, svc, _ := setup()
	register(t, svc)

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret2",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	_, _, svc, manager := setup()
	register(t, svc)

	token, err := svc.Login(context.Background(), user.LoginRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	_, _, svc, _ := setup()
	register(t, svc)

	_, err := svc.Login(context.Background(), user.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownUserLooksLikeBadPassword(t *testing.T) {
	_, _, svc, _ := setup()

	_, err := svc.Login(context.Background(), user.LoginRequest{Username: "nobody", Password: "secret1"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestSendResetLinkUnknownEmailIsSilent(t *testing.T) {
	_, mail, svc, _ := setup()

	err := svc.SendResetLink(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Empty(t, mail.sent)
}

func TestSendResetLinkMailsTheCode(t *testing.T) {
	repo, mail, svc, _ := setup()
	register(t, svc)

	require.NoError(t, svc.SendResetLink(context.Background(), "alice@example.com"))

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "alice@example.com", mail.sent[0].Email)
	assert.Contains(t, mail.sent[0].ResetLink, "/api/v1/auth/reset/")
	assert.Len(t, repo.resetCodes, 1)
}

func TestResetPasswordConsumesTheCode(t *testing.T) {
	repo, _, svc, _ := setup()
	register(t, svc)
	require.NoError(t, svc.SendResetLink(context.Background(), "alice@example.com"))

	var hashCode string
	for hash := range repo.resetCodes {
		hashCode = hash
	}

	token, err := svc.ResetPassword(context.Background(), hashCode, "brand-new")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, repo.resetCodes, "the code is single use")

	_, err = svc.Login(context.Background(), user.LoginRequest{Username: "alice", Password: "brand-new"})
	assert.NoError(t, err)

	_, err = svc.ResetPassword(context.Background(), hashCode, "another")
	assert.ErrorIs(t, err, user.ErrInvalidResetCode)
}

func TestResetPasswordRejectsReusedPassword(t *testing.T) {
	repo, _, svc, _ := setup()
	register(t, svc)
	require.NoError(t, svc.SendResetLink(context.Background(), "alice@example.com"))

	var hashCode string
	for hash := range repo.resetCodes {
		hashCode = hash
	}

	_, err := svc.ResetPassword(context.Background(), hashCode, "secret1")
	assert.ErrorIs(t, err, user.ErrSamePassword)
	assert.Empty(t, repo.resetCodes, "even a rejected attempt burns the code")
}

func TestUpdatePassword(t *testing.T) {
	_, _, svc, _ := setup()
	register(t, svc)

	err := svc.UpdatePassword(context.Background(), 1, user.UpdatePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-secret",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	err = svc.UpdatePassword(context.Background(), 1, user.UpdatePasswordRequest{
		CurrentPassword: "secret1",
		NewPassword:     "new-secret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), user.LoginRequest{Username: "alice", Password: "new-secret"})
	assert.NoError(t, err)
}
