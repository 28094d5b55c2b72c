package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braetspilscafeen/go-catalog-backend/internal/auth/domain"
	"github.com/braetspilscafeen/go-catalog-backend/internal/auth/repository"
)

type fakeProfileStore struct {
	profiles map[string]*domain.Profile
	gets     int
	creates  int
	getErr   error
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[string]*domain.Profile{}}
}

func (f *fakeProfileStore) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.profiles[email]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileStore) Create(ctx context.Context, p *domain.Profile) error {
	f.creates++
	cp := *p
	f.profiles[p.Email] = &cp
	return nil
}

func newTestCache(t *testing.T) *repository.ProfileCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return repository.NewProfileCache(client, time.Minute)
}

func TestResolve_NilPrincipal(t *testing.T) {
	r := NewResolver(newFakeProfileStore(), nil)

	p, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = r.Resolve(context.Background(), &domain.Principal{UID: "u1"})
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestResolve_LazyCreate(t *testing.T) {
	store := newFakeProfileStore()
	r := NewResolver(store, nil)

	principal := &domain.Principal{
		UID:      "u1",
		Email:    "new@x.com",
		Name:     "New User",
		PhotoURL: "http://x/p.png",
	}

	p, err := r.Resolve(context.Background(), principal)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "new@x.com", p.Email)
	assert.Equal(t, "New User", p.Name)
	assert.Equal(t, "http://x/p.png", p.PhotoURL)
	assert.Equal(t, "u1", p.UID)
	assert.False(t, p.IsAdmin, "first sign-in must never grant admin")
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, 1, store.creates)

	// Second resolution reads the stored record, no second create.
	p, err = r.Resolve(context.Background(), principal)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1, store.creates)
}

func TestResolve_NamelessPrincipalDefaults(t *testing.T) {
	store := newFakeProfileStore()
	r := NewResolver(store, nil)

	p, err := r.Resolve(context.Background(), &domain.Principal{UID: "u1", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", p.Name)
}

func TestResolve_AdminFlagComesFromStore(t *testing.T) {
	store := newFakeProfileStore()
	store.profiles["admin@x.com"] = &domain.Profile{Email: "admin@x.com", IsAdmin: true}
	r := NewResolver(store, nil)

	p, err := r.Resolve(context.Background(), &domain.Principal{UID: "u1", Email: "admin@x.com"})
	require.NoError(t, err)
	assert.True(t, p.IsAdmin)
}

func TestResolve_Cache(t *testing.T) {
	store := newFakeProfileStore()
	store.profiles["a@x.com"] = &domain.Profile{Email: "a@x.com", Name: "A"}
	r := NewResolver(store, newTestCache(t))

	principal := &domain.Principal{UID: "u1", Email: "a@x.com"}

	t.Run("second resolve is served from cache", func(t *testing.T) {
		_, err := r.Resolve(context.Background(), principal)
		require.NoError(t, err)
		_, err = r.Resolve(context.Background(), principal)
		require.NoError(t, err)
		assert.Equal(t, 1, store.gets)
	})

	t.Run("invalidate forces a store re-read", func(t *testing.T) {
		store.profiles["a@x.com"].IsAdmin = true
		r.Invalidate(context.Background(), "a@x.com")

		p, err := r.Resolve(context.Background(), principal)
		require.NoError(t, err)
		assert.True(t, p.IsAdmin)
		assert.Equal(t, 2, store.gets)
	})
}

func TestResolve_StoreError(t *testing.T) {
	store := newFakeProfileStore()
	store.getErr = assert.AnError
	r := NewResolver(store, nil)

	_, err := r.Resolve(context.Background(), &domain.Principal{UID: "u1", Email: "a@x.com"})
	assert.Error(t, err)
}
