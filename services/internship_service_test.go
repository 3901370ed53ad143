package services

import (
	"testing"

	"student-platform/models"
	"student-platform/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternshipService(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewInternshipService(mem)

	_, err := svc.CreateInternship(InternshipInput{
		Title:    "Backend Intern",
		Duration: "3 months",
		Location: "Moscow",
	})
	require.NoError(t, err)

	retired := &models.Internship{Title: "Old Posting", IsActive: false}
	require.NoError(t, mem.CreateInternship(retired))

	t.Run("ActiveOnlyFiltersInactive", func(t *testing.T) {
		active, err := svc.ListInternships(true)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "Backend Intern", active[0].Title)

		all, err := svc.ListInternships(false)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("TitleRequired", func(t *testing.T) {
		_, err := svc.CreateInternship(InternshipInput{})
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}
