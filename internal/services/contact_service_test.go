package services

import (
	"testing"

	"github.com/colipio/gtm-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactCreateAndList(t *testing.T) {
	svc := NewContactService(newTestDB(t))

	accountID := uuid.New()
	contact, err := svc.CreateForOwner("u1", &dto.CreateContactRequest{
		FullName:  "Grace Hopper",
		Email:     strPtr("grace@initech.com"),
		Channel:   strPtr("linkedin"),
		AccountID: &accountID,
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", contact.OwnerID)
	require.NotNil(t, contact.AccountID)
	assert.Equal(t, accountID, *contact.AccountID)

	_, err = svc.CreateForOwner("u2", &dto.CreateContactRequest{FullName: "Someone Else"})
	require.NoError(t, err)

	contacts, err := svc.ListByOwner("u1")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Grace Hopper", contacts[0].FullName)
}

func TestContactCreateRequiresFullName(t *testing.T) {
	svc := NewContactService(newTestDB(t))

	_, err := svc.CreateForOwner("u1", &dto.CreateContactRequest{FullName: ""})
	assert.ErrorIs(t, err, ErrFullNameRequired)
}
