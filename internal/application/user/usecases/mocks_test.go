package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vforit/ticktrack/internal/domain/activity"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	"github.com/vforit/ticktrack/internal/domain/user"
	"github.com/vforit/ticktrack/internal/infrastructure/auth"
	"github.com/vforit/ticktrack/internal/shared/db"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	UpdateFunc           func(ctx context.Context, u *user.User) error
	DeleteFunc           func(ctx context.Context, userID uint) error
	GetByIDFunc          func(ctx context.Context, userID uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	ListFunc             func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockTicketRepository struct {
	CountByCreatorFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error    { return nil }
func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) CountByCreator(ctx context.Context, userID uint) (int64, error) {
	if m.CountByCreatorFunc != nil {
		return m.CountByCreatorFunc(ctx, userID)
	}
	return 0, nil
}

type mockCommentRepository struct {
	DeleteByUserIDFunc func(ctx context.Context, userID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error     { return nil }
func (m *mockCommentRepository) Update(ctx context.Context, c *ticket.Comment) error   { return nil }
func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error      { return nil }
func (m *mockCommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	return nil
}

func (m *mockCommentRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	return nil, nil
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	return nil, nil
}

type mockActivityRepository struct {
	DeleteByUserIDFunc func(ctx context.Context, userID uint) error
}

func (m *mockActivityRepository) Save(ctx context.Context, l *activity.Log) error   { return nil }
func (m *mockActivityRepository) Update(ctx context.Context, l *activity.Log) error { return nil }
func (m *mockActivityRepository) Delete(ctx context.Context, logID uint) error      { return nil }
func (m *mockActivityRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	return nil
}

func (m *mockActivityRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *mockActivityRepository) GetByID(ctx context.Context, logID uint) (*activity.Log, error) {
	return nil, nil
}

func (m *mockActivityRepository) List(ctx context.Context) ([]*activity.Log, error) {
	return nil, nil
}

func (m *mockActivityRepository) ListByUserID(ctx context.Context, userID uint) ([]*activity.Log, error) {
	return nil, nil
}

func (m *mockActivityRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*activity.Log, error) {
	return nil, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc       func(userID uint, username string) (*auth.TokenPair, error)
	GenerateAccessFunc func(userID uint, username string) (string, error)
	VerifyFunc         func(tokenString string) (*auth.Claims, error)
}

func (m *mockTokenService) Generate(userID uint, username string) (*auth.TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username)
	}
	return &auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 1800}, nil
}

func (m *mockTokenService) GenerateAccess(userID uint, username string) (string, error) {
	if m.GenerateAccessFunc != nil {
		return m.GenerateAccessFunc(userID, username)
	}
	return "access", nil
}

func (m *mockTokenService) Verify(tokenString string) (*auth.Claims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(tokenString)
	}
	return nil, nil
}

type mockRevocationStore struct {
	RevokeFunc    func(ctx context.Context, jti string, ttl time.Duration) error
	IsRevokedFunc func(ctx context.Context, jti string) (bool, error)
}

func (m *mockRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, jti, ttl)
	}
	return nil
}

func (m *mockRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if m.IsRevokedFunc != nil {
		return m.IsRevokedFunc(ctx, jti)
	}
	return false, nil
}

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) Fatal(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

// newTestTxManager backs the transaction manager with an in-memory sqlite
// database. The repositories under test are mocks; only the transaction
// bracketing is real.
func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	return db.NewTransactionManager(gdb)
}

func testUser(t *testing.T, id uint, username, passwordHash string) *user.User {
	t.Helper()

	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, username, passwordHash, "Test User", "Engineer", "member", false, now, now)
	require.NoError(t, err)
	return u
}
