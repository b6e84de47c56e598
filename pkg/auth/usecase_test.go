package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/abalakin/userauth/pkg/auth"
)

// stubRepo is an in-memory auth.UserRepository with the same uniqueness
// contract as the real store: Create loses with ErrEmailTaken on a duplicate.
type stubRepo struct {
	mu    sync.Mutex
	users map[string]auth.User // keyed by email
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: make(map[string]auth.User)}
}

func (s *stubRepo) Create(ctx context.Context, user auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return auth.ErrEmailTaken
	}
	s.users[user.Email] = user
	return nil
}

func (s *stubRepo) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return user, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}

func (s *stubRepo) delete(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, email)
}

// stubTokens issues predictable tokens without involving JWT.
type stubTokens struct{}

func (stubTokens) Generate(ctx context.Context, user auth.User) (string, error) {
	return "token-" + user.ID.String(), nil
}

func newService(repo auth.UserRepository) auth.AuthUseCase {
	return auth.NewAuthService(repo, auth.NewBcryptHasherWithCost(bcrypt.MinCost), stubTokens{})
}

func TestRegister(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo)

	result, err := svc.Register(context.Background(), "John Doe", "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", result.User.Name)
	assert.Equal(t, "john@example.com", result.User.Email)
	assert.NotEqual(t, uuid.Nil, result.User.ID)
	assert.NotEmpty(t, result.Token)

	// Plaintext never stored.
	stored, err := repo.GetByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newService(newStubRepo())

	_, err := svc.Register(context.Background(), "John Doe", "john@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Jane Doe", "john@example.com", "hunter22")
	require.ErrorIs(t, err, auth.ErrEmailTaken)

	// Email uniqueness is case-insensitive.
	_, err = svc.Register(context.Background(), "Jane Doe", "John@Example.COM", "hunter22")
	require.ErrorIs(t, err, auth.ErrEmailTaken)
}

func TestRegisterConcurrentSameEmail(t *testing.T) {
	svc := newService(newStubRepo())
	const attempts = 16

	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(context.Background(), "John Doe", "john@example.com", "password123")
		}(i)
	}
	wg.Wait()

	// Exactly one winner, whatever the interleaving; everyone else loses
	// with ErrEmailTaken at Create.
	var wins, losses int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, auth.ErrEmailTaken):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, losses)
}

func TestRegisterValidation(t *testing.T) {
	svc := newService(newStubRepo())
	ctx := context.Background()

	for _, tc := range []struct {
		name, email, password string
	}{
		{"", "john@example.com", "password123"},
		{"John Doe", "", "password123"},
		{"John Doe", "john@example.com", ""},
		{"   ", "john@example.com", "password123"},
	} {
		_, err := svc.Register(ctx, tc.name, tc.email, tc.password)
		assert.ErrorIs(t, err, auth.ErrValidation)
	}
}

func TestLogin(t *testing.T) {
	svc := newService(newStubRepo())
	ctx := context.Background()

	registered, err := svc.Register(ctx, "John Doe", "john@example.com", "password123")
	require.NoError(t, err)

	result, err := svc.Login(ctx, "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)
	assert.NotEmpty(t, result.Token)

	// Address lookup is case-insensitive too.
	_, err = svc.Login(ctx, "John@Example.com", "password123")
	require.NoError(t, err)
}

func TestLoginValidation(t *testing.T) {
	svc := newService(newStubRepo())

	_, err := svc.Login(context.Background(), "", "password123")
	assert.ErrorIs(t, err, auth.ErrValidation)
	_, err = svc.Login(context.Background(), "john@example.com", "")
	assert.ErrorIs(t, err, auth.ErrValidation)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	svc := newService(newStubRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "John Doe", "john@example.com", "password123")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "john@example.com", "wrong")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "password123")

	require.ErrorIs(t, wrongPassword, auth.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, auth.ErrInvalidCredentials)
	// Byte-identical messages: no user enumeration via error text.
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
