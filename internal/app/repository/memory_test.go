package repository

import (
	"testing"

	"backend/internal/app/ds"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ListSubmissionsNewestFirst(t *testing.T) {
	store := NewMemoryStore()

	for _, name := range []string{"first", "second", "third"} {
		sub := &ds.ContactSubmission{Name: name, Email: name + "@example.com", Message: "message body", Status: ds.StatusNew}
		require.NoError(t, store.CreateSubmission(sub))
	}

	subs, err := store.ListSubmissions(ContactFilter{})
	require.NoError(t, err)
	require.Len(t, subs, 3)
	require.Equal(t, "third", subs[0].Name)
	require.Equal(t, "first", subs[2].Name)
}

func TestMemoryStore_SearchCaseInsensitive(t *testing.T) {
	store := NewMemoryStore()

	sub := &ds.ContactSubmission{Name: "Alice", Email: "alice@example.com", Message: "Need a QUOTE for a site", Status: ds.StatusNew}
	require.NoError(t, store.CreateSubmission(sub))

	subs, err := store.ListSubmissions(ContactFilter{Search: "quote"})
	require.NoError(t, err)
	require.Len(t, subs, 1)

	subs, err = store.ListSubmissions(ContactFilter{Search: "absent"})
	require.NoError(t, err)
	require.Empty(t, subs)
}

func TestMemoryStore_ServiceVisibility(t *testing.T) {
	store := NewMemoryStore()

	active := &ds.Service{Title: "SEO Services", Description: "d", IsActive: true}
	hidden := &ds.Service{Title: "Old Service", Description: "d", IsActive: false}
	require.NoError(t, store.CreateService(active))
	require.NoError(t, store.CreateService(hidden))

	list, err := store.ListActiveServices()
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = store.GetActiveServiceByID(hidden.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UpdateSubmissionStatusMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.UpdateSubmissionStatus(99, ds.StatusClosed)
	require.ErrorIs(t, err, ErrNotFound)
}
