package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	authdomain "jarvis-backend/internal/auth/domain"
	authdto "jarvis-backend/internal/auth/dto"
	"jarvis-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byID       map[string]*authdomain.User
	byEmail    map[string]*authdomain.User
	byGoogleID map[string]*authdomain.User
	nextID     int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       map[string]*authdomain.User{},
		byEmail:    map[string]*authdomain.User{},
		byGoogleID: map[string]*authdomain.User{},
	}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	if user.GoogleID != "" {
		r.byGoogleID[user.GoogleID] = user
	}
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) FindByGoogleID(googleID string) (*authdomain.User, error) {
	return r.byGoogleID[googleID], nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	return r.Create(user)
}

type fakeTokenRepo struct {
	tokens map[string]*authdomain.GoogleToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*authdomain.GoogleToken{}}
}

func (r *fakeTokenRepo) Upsert(token *authdomain.GoogleToken) error {
	r.tokens[token.UserID] = token
	return nil
}

func (r *fakeTokenRepo) RefreshTokenForUser(userID string) (string, error) {
	t, ok := r.tokens[userID]
	if !ok {
		return "", errors.New("no Google account linked")
	}
	return t.RefreshToken, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    "u@example.com",
		Password: "hunter22",
		Name:     "U",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "email", resp.User.Provider)
	// Stored password is hashed, never the plaintext.
	assert.NotEqual(t, "hunter22", resp.User.Password)

	login, err := uc.Login(&authdto.LoginRequest{Email: "u@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	_, err := uc.Register(&authdto.RegisterRequest{Email: "u@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = uc.Register(&authdto.RegisterRequest{Email: "u@example.com", Password: "other"})
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	_, err := uc.Register(&authdto.RegisterRequest{Email: "u@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = uc.Login(&authdto.LoginRequest{Email: "u@example.com", Password: "wrong"})
	assert.Error(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	_, err := uc.Login(&authdto.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.Error(t, err)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "u@example.com", Password: "hunter22"})
	require.NoError(t, err)

	user, err := uc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	_, err := uc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	repo := newFakeUserRepo()
	issuer := NewAuthUsecase(repo, newFakeTokenRepo(), &config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})
	verifier := NewAuthUsecase(repo, newFakeTokenRepo(), testConfig())

	resp, err := issuer.Register(&authdto.RegisterRequest{Email: "u@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(resp.AccessToken)
	assert.Error(t, err)
}

func TestGoogleAuthURL(t *testing.T) {
	cfg := testConfig()
	cfg.GoogleClientID = "client-id"
	cfg.GoogleRedirectURI = "http://localhost:8080/api/auth/google/callback"
	uc := NewAuthUsecase(newFakeUserRepo(), newFakeTokenRepo(), cfg)

	url := uc.GoogleAuthURL("state-123")
	assert.Contains(t, url, "state=state-123")
	assert.Contains(t, url, "access_type=offline")
	assert.Contains(t, url, "gmail.modify")
}
