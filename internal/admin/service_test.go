package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palinaresort/resort-booking-backend/internal/auth"
)

type memRepository struct {
	admins map[string]*Admin
	nextID int64
}

func newMemRepository() *memRepository {
	return &memRepository{admins: map[string]*Admin{}, nextID: 1}
}

func (r *memRepository) Create(_ context.Context, a *Admin) error {
	a.ID = r.nextID
	r.nextID++
	a.CreatedAt = time.Now()
	stored := *a
	r.admins[a.Username] = &stored
	return nil
}

func (r *memRepository) GetByUsername(_ context.Context, username string) (*Admin, error) {
	a, ok := r.admins[username]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *memRepository) Count(_ context.Context) (int, error) {
	return len(r.admins), nil
}

func newTestService(repo Repository) Service {
	hasher := auth.NewBcryptPasswordHasherWithCost(4)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return NewService(repo, hasher, jwtManager)
}

func TestSeedAndLogin(t *testing.T) {
	repo := newMemRepository()
	svc := newTestService(repo)

	require.NoError(t, svc.Seed(context.Background(), "admin", "s3cret"))

	token, a, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", a.Username)

	// The token round-trips through the JWT manager.
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	claims, err := jwtManager.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	id, err := claims.AdminID()
	require.NoError(t, err)
	assert.Equal(t, a.ID, id)
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := newMemRepository()
	svc := newTestService(repo)

	require.NoError(t, svc.Seed(context.Background(), "admin", "s3cret"))
	require.NoError(t, svc.Seed(context.Background(), "admin", "different"))

	_, _, err := svc.Login(context.Background(), "admin", "s3cret")
	assert.NoError(t, err, "the second seed must not overwrite the first admin")
}

func TestSeedSkippedWithoutCredentials(t *testing.T) {
	repo := newMemRepository()
	svc := newTestService(repo)

	require.NoError(t, svc.Seed(context.Background(), "", ""))
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemRepository()
	svc := newTestService(repo)
	require.NoError(t, svc.Seed(context.Background(), "admin", "s3cret"))

	_, _, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(newMemRepository())

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown users get the same error as bad passwords")
}
