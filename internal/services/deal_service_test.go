package services

import (
	"testing"
	"time"

	"github.com/colipio/gtm-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealCreateAppliesDefaults(t *testing.T) {
	svc := NewDealService(newTestDB(t))

	deal, err := svc.CreateForOwner("u1", &dto.CreateDealRequest{Title: "Acme deal"})
	require.NoError(t, err)

	assert.Equal(t, "Acme deal", deal.Title)
	assert.Equal(t, "New", deal.Stage)
	assert.Equal(t, "EUR", deal.Currency)
	assert.Equal(t, "u1", deal.OwnerID)
	assert.Nil(t, deal.Value)
}

func TestDealCreateKeepsExplicitFields(t *testing.T) {
	svc := NewDealService(newTestDB(t))

	deal, err := svc.CreateForOwner("u1", &dto.CreateDealRequest{
		Title:    "Globex expansion",
		Stage:    strPtr("Qualified"),
		Value:    floatPtr(12500),
		Currency: strPtr("USD"),
		Source:   strPtr("outbound"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Qualified", deal.Stage)
	assert.Equal(t, "USD", deal.Currency)
	require.NotNil(t, deal.Value)
	assert.Equal(t, 12500.0, *deal.Value)
}

func TestDealCreateValidation(t *testing.T) {
	svc := NewDealService(newTestDB(t))

	_, err := svc.CreateForOwner("u1", &dto.CreateDealRequest{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.CreateForOwner("u1", &dto.CreateDealRequest{
		Title: "bad stage",
		Stage: strPtr("Negotiating"),
	})
	assert.ErrorIs(t, err, ErrInvalidStage)
}

func TestDealListIsOwnerScoped(t *testing.T) {
	svc := NewDealService(newTestDB(t))

	_, err := svc.CreateForOwner("u1", &dto.CreateDealRequest{Title: "u1 deal a"})
	require.NoError(t, err)
	_, err = svc.CreateForOwner("u1", &dto.CreateDealRequest{Title: "u1 deal b"})
	require.NoError(t, err)
	_, err = svc.CreateForOwner("u2", &dto.CreateDealRequest{Title: "u2 deal"})
	require.NoError(t, err)

	deals, err := svc.ListByOwner("u1")
	require.NoError(t, err)
	require.Len(t, deals, 2)
	for _, d := range deals {
		assert.Equal(t, "u1", d.OwnerID)
	}

	deals, err = svc.ListByOwner("u3")
	require.NoError(t, err)
	assert.Empty(t, deals)
}

func TestDealListOrderedNewestFirst(t *testing.T) {
	svc := NewDealService(newTestDB(t))

	first, err := svc.CreateForOwner("u1", &dto.CreateDealRequest{Title: "first"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := svc.CreateForOwner("u1", &dto.CreateDealRequest{Title: "second"})
	require.NoError(t, err)

	deals, err := svc.ListByOwner("u1")
	require.NoError(t, err)
	require.Len(t, deals, 2)
	assert.Equal(t, second.ID, deals[0].ID)
	assert.Equal(t, first.ID, deals[1].ID)
}

func TestDealUpdateByOwner(t *testing.T) {
	svc := NewDealService(newTestDB(t))

	deal, err := svc.CreateForOwner("u1", &dto.CreateDealRequest{Title: "Acme deal"})
	require.NoError(t, err)

	updated, err := svc.UpdateForOwner("u1", deal.ID, &dto.UpdateDealRequest{
		Stage: strPtr("Won"),
		Value: floatPtr(9900),
	})
	require.NoError(t, err)
	assert.Equal(t, "Won", updated.Stage)
	require.NotNil(t, updated.Value)
	assert.Equal(t, 9900.0, *updated.Value)
	assert.Equal(t, "u1", updated.OwnerID)
	assert.Equal(t, "Acme deal", updated.Title)
}

func TestDealUpdateRejectsNonOwner(t *testing.T) {
	svc := NewDealService(newTestDB(t))

	deal, err := svc.CreateForOwner("u1", &dto.CreateDealRequest{Title: "Acme deal"})
	require.NoError(t, err)

	_, err = svc.UpdateForOwner("u2", deal.ID, &dto.UpdateDealRequest{Stage: strPtr("Won")})
	assert.ErrorIs(t, err, ErrNotAllowed)

	// Record must be untouched after the rejected update.
	deals, err := svc.ListByOwner("u1")
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "New", deals[0].Stage)
}

func TestDealUpdateUnknownIDLooksLikeForbidden(t *testing.T) {
	svc := NewDealService(newTestDB(t))

	_, err := svc.UpdateForOwner("u1", uuid.New(), &dto.UpdateDealRequest{Stage: strPtr("Won")})
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestDealUpdateValidation(t *testing.T) {
	svc := NewDealService(newTestDB(t))

	deal, err := svc.CreateForOwner("u1", &dto.CreateDealRequest{Title: "Acme deal"})
	require.NoError(t, err)

	_, err = svc.UpdateForOwner("u1", deal.ID, &dto.UpdateDealRequest{Stage: strPtr("Paused")})
	assert.ErrorIs(t, err, ErrInvalidStage)

	_, err = svc.UpdateForOwner("u1", deal.ID, &dto.UpdateDealRequest{Title: strPtr("  ")})
	assert.ErrorIs(t, err, ErrTitleRequired)

	// Empty update is a no-op, not an error.
	unchanged, err := svc.UpdateForOwner("u1", deal.ID, &dto.UpdateDealRequest{})
	require.NoError(t, err)
	assert.Equal(t, "New", unchanged.Stage)
}
