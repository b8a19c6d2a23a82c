package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Haribaskar21/Profile-backend/internal/events"
	"github.com/Haribaskar21/Profile-backend/internal/jwt"
	"github.com/Haribaskar21/Profile-backend/internal/model"
	"github.com/Haribaskar21/Profile-backend/internal/service"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) (uuid.UUID, error) {
	if _, exists := f.byEmail[user.Email]; exists {
		return uuid.Nil, &pgconn.PgError{Code: "23505"}
	}

	u := *user
	u.ID = uuid.New()
	f.byEmail[u.Email] = &u
	return u.ID, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, sql.ErrNoRows
}

func newAuthService(repo *fakeUserRepo) (service.AuthService, *jwt.Service) {
	tokens := jwt.NewService([]byte("test-secret"), time.Hour)
	return service.NewAuthService(repo, tokens, events.NoopPublisher{}), tokens
}

func TestRegister_NeverStoresPlaintextPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newAuthService(repo)

	err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw123")
	require.NoError(t, err)

	stored := repo.byEmail["ann@x.com"]
	require.NotEqual(t, "pw123", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123")))
	require.Contains(t, stored.AvatarURL, "dicebear.com")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newAuthService(repo)

	require.NoError(t, svc.Register(context.Background(), "Ann", "ann@x.com", "pw123"))

	err := svc.Register(context.Background(), "Other Ann", "ann@x.com", "different")
	require.ErrorIs(t, err, service.ErrDuplicateEmail)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc, tokens := newAuthService(repo)

	require.NoError(t, svc.Register(context.Background(), "Ann", "ann@x.com", "pw123"))

	token, user, err := svc.Login(context.Background(), "ann@x.com", "pw123")
	require.NoError(t, err)
	require.Equal(t, "Ann", user.Name)
	require.Equal(t, "ann@x.com", user.Email)
	require.NotEmpty(t, user.Avatar)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, subject)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newAuthService(repo)

	require.NoError(t, svc.Register(context.Background(), "Ann", "ann@x.com", "pw123"))

	tok1, user1, err1 := svc.Login(context.Background(), "ann@x.com", "wrong")
	tok2, user2, err2 := svc.Login(context.Background(), "nobody@x.com", "pw123")

	require.ErrorIs(t, err1, service.ErrInvalidCredentials)
	require.ErrorIs(t, err2, service.ErrInvalidCredentials)
	require.Equal(t, tok1, tok2)
	require.Equal(t, user1, user2)
}
