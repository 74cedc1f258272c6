package usecases

import (
	"context"
	"time"

	"stratplan/internal/domain/access"
	"stratplan/internal/domain/user"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

// reverseHasher stores passwords reversed so hashes differ from input.
type reverseHasher struct{}

func (reverseHasher) Hash(password string) (string, error) {
	r := []rune(password)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r), nil
}

func (h reverseHasher) Verify(hash, password string) bool {
	want, _ := h.Hash(password)
	return hash == want
}

type mockUserRepository struct {
	users   map[uint]*user.User
	created []*user.User
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if err := u.SetID(uint(len(m.users) + len(m.created) + 1)); err != nil {
		return err
	}
	m.created = append(m.created, u)
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) ListByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

type mockTokenService struct {
	GenerateFunc func(userID uint, username string) (*TokenPair, error)
}

func (m *mockTokenService) Generate(userID uint, username string) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username)
	}
	return &TokenPair{AccessToken: "token-for-" + username, ExpiresIn: 3600}, nil
}

type membershipList []access.Membership

func (m membershipList) ListByUser(ctx context.Context, userID uint) ([]access.Membership, error) {
	var out []access.Membership
	for _, r := range m {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func storedUser(id uint, username, password string) *user.User {
	hash, _ := reverseHasher{}.Hash(password)
	now := time.Now()
	u, _ := user.ReconstructUser(id, username, "Hana", "Tesfaye", "hana@example.org", hash, now, now)
	return u
}
