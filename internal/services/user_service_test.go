package services

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateByAuthID(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.GetOrCreateByAuthID("sub-123", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "sub-123", user.AuthID)
	assert.Equal(t, "ada@example.com", user.Email)

	again, err := svc.GetOrCreateByAuthID("sub-123", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestGetOrCreateByAuthIDConcurrent(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	const callers = 8
	ids := make([]uuid.UUID, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user, err := svc.GetOrCreateByAuthID("sub-123", "ada@example.com")
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = user.ID
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}
}

func TestGetOrCreateByAuthIDKeepsDistinctSubjectsApart(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	a, err := svc.GetOrCreateByAuthID("sub-a", "a@example.com")
	require.NoError(t, err)
	b, err := svc.GetOrCreateByAuthID("sub-b", "b@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}
