package session

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"javabite-client/internal/api"
	"javabite-client/internal/domain"
)

type fakeAuthAPI struct {
	loginUser  *domain.User
	loginErr   error
	meUser     *domain.User
	meErr      error
	logoutErr  error
	logoutHits int
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return f.loginUser, f.loginErr
}

func (f *fakeAuthAPI) Signup(ctx context.Context, req api.SignupRequest) (*domain.User, error) {
	return &domain.User{Name: req.Name, Email: req.Email, Role: domain.RoleCustomer}, nil
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.logoutHits++
	return f.logoutErr
}

func (f *fakeAuthAPI) Me(ctx context.Context) (*domain.User, error) {
	return f.meUser, f.meErr
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice@example.com",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestStore_RestoreAuthenticated(t *testing.T) {
	fake := &fakeAuthAPI{meUser: &domain.User{ID: 1, Role: domain.RoleAdmin}}
	s := New(fake, nil)

	err := s.Restore(context.Background())

	assert.NoError(t, err)
	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.HasRole(domain.RoleAdmin))
}

func TestStore_RestoreUnauthenticatedIsNotAnError(t *testing.T) {
	fake := &fakeAuthAPI{meErr: &api.Error{Kind: api.KindBusiness, Status: http.StatusUnauthorized, Message: "not authenticated"}}
	s := New(fake, nil)

	err := s.Restore(context.Background())

	assert.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Current())
}

func TestStore_RestorePropagatesTransientFailures(t *testing.T) {
	fake := &fakeAuthAPI{meErr: &api.Error{Kind: api.KindTransient, Message: "timeout"}}
	s := New(fake, nil)

	err := s.Restore(context.Background())

	assert.Error(t, err)
}

func TestStore_LoginPersistsToken(t *testing.T) {
	fake := &fakeAuthAPI{loginUser: &domain.User{ID: 1, Email: "alice@example.com", Token: "tok-abc"}}
	tokens := NewMemoryTokenStore()
	s := New(fake, tokens)

	user, err := s.Login(context.Background(), "alice@example.com", "secret")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.True(t, s.IsAuthenticated())

	stored, err := tokens.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "tok-abc", stored)
}

func TestStore_LoginFailureLeavesStateClean(t *testing.T) {
	fake := &fakeAuthAPI{loginErr: &api.Error{Kind: api.KindBusiness, Status: 401, Message: "invalid email or password"}}
	s := New(fake, NewMemoryTokenStore())

	_, err := s.Login(context.Background(), "alice@example.com", "wrong")

	assert.Error(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestStore_LogoutClearsLocallyEvenOnServerError(t *testing.T) {
	fake := &fakeAuthAPI{
		loginUser: &domain.User{ID: 1, Token: "tok-abc"},
		logoutErr: errors.New("backend down"),
	}
	tokens := NewMemoryTokenStore()
	s := New(fake, tokens)
	_, err := s.Login(context.Background(), "a@b.c", "pw")
	assert.NoError(t, err)

	err = s.Logout(context.Background())

	assert.Error(t, err)
	assert.False(t, s.IsAuthenticated())
	stored, _ := tokens.Load(context.Background())
	assert.Equal(t, "", stored)
	assert.Equal(t, 1, fake.logoutHits)
}

func TestSource_SuppliesLiveToken(t *testing.T) {
	tokens := NewMemoryTokenStore()
	live := signedToken(t, time.Now().Add(time.Hour))
	assert.NoError(t, tokens.Save(context.Background(), live))

	got, err := Source{Store: tokens}.Token(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, live, got)
}

func TestSource_DiscardsExpiredToken(t *testing.T) {
	tokens := NewMemoryTokenStore()
	dead := signedToken(t, time.Now().Add(-time.Hour))
	assert.NoError(t, tokens.Save(context.Background(), dead))

	got, err := Source{Store: tokens}.Token(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "", got)

	// The dead token is also cleared from the store.
	stored, _ := tokens.Load(context.Background())
	assert.Equal(t, "", stored)
}

func TestSource_EmptyStore(t *testing.T) {
	got, err := Source{Store: NewMemoryTokenStore()}.Token(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "future exp",
			token: signedToken(t, now.Add(time.Hour)),
			want:  false,
		},
		{
			name:  "past exp",
			token: signedToken(t, now.Add(-time.Minute)),
			want:  true,
		},
		{
			name:  "garbage token",
			token: "not-a-jwt",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenExpired(tt.token, now))
		})
	}
}

func TestTokenExpired_NoExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice"})
	signed, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	// Tokens without an exp claim are treated as live; the backend decides.
	assert.False(t, tokenExpired(signed, time.Now()))
}
