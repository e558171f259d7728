package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRepo records how many times each lookup reaches the backing store.
type countingRepo struct {
	doctorCalls    int
	emergencyCalls int
	doctorEmail    string
	emergency      []string
	err            error
}

func (c *countingRepo) DoctorEmail(ctx context.Context, id string) (string, error) {
	c.doctorCalls++
	return c.doctorEmail, c.err
}

func (c *countingRepo) NurseEmail(ctx context.Context, id string) (string, error) {
	return "", ErrNotFound
}

func (c *countingRepo) StoreEmail(ctx context.Context, id string) (string, error) {
	return "", ErrNotFound
}

func (c *countingRepo) EmergencyNurseEmails(ctx context.Context) ([]string, error) {
	c.emergencyCalls++
	return c.emergency, c.err
}

func (c *countingRepo) UserEmail(ctx context.Context, userID string) (string, error) {
	return "", ErrNotFound
}

func newCachedRepo(t *testing.T, inner Repository, ttl time.Duration) (*CachedRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCachedRepository(inner, rdb, ttl, nil), mr
}

func TestCachedDoctorEmailHitsStoreOnce(t *testing.T) {
	inner := &countingRepo{doctorEmail: "dr.ahmed@clinic.pk"}
	repo, _ := newCachedRepo(t, inner, time.Minute)

	for i := 0; i < 3; i++ {
		email, err := repo.DoctorEmail(context.Background(), "doc-1")
		require.NoError(t, err)
		assert.Equal(t, "dr.ahmed@clinic.pk", email)
	}
	assert.Equal(t, 1, inner.doctorCalls)
}

func TestCachedDoctorEmailExpires(t *testing.T) {
	inner := &countingRepo{doctorEmail: "dr.ahmed@clinic.pk"}
	repo, mr := newCachedRepo(t, inner, time.Minute)

	_, err := repo.DoctorEmail(context.Background(), "doc-1")
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)
	_, err = repo.DoctorEmail(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.doctorCalls)
}

func TestCachedLookupErrorNotCached(t *testing.T) {
	inner := &countingRepo{err: errors.New("db down")}
	repo, _ := newCachedRepo(t, inner, time.Minute)

	_, err := repo.DoctorEmail(context.Background(), "doc-1")
	require.Error(t, err)
	_, err = repo.DoctorEmail(context.Background(), "doc-1")
	require.Error(t, err)
	assert.Equal(t, 2, inner.doctorCalls)
}

func TestCachedEmergencyNurseBroadcastList(t *testing.T) {
	inner := &countingRepo{emergency: []string{"nurse.a@sehatplus.pk", "nurse.b@sehatplus.pk"}}
	repo, _ := newCachedRepo(t, inner, time.Minute)

	first, err := repo.EmergencyNurseEmails(context.Background())
	require.NoError(t, err)
	second, err := repo.EmergencyNurseEmails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.emergencyCalls)
}

func TestCacheOutageFallsThrough(t *testing.T) {
	inner := &countingRepo{doctorEmail: "dr.ahmed@clinic.pk"}
	repo, mr := newCachedRepo(t, inner, time.Minute)
	mr.Close()

	email, err := repo.DoctorEmail(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "dr.ahmed@clinic.pk", email)
	assert.Equal(t, 1, inner.doctorCalls)
}
