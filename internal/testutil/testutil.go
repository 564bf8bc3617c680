package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wordbin/wordbin/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	database, err := db.Open("file::memory:")
	require.NoError(t, err)
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// Ptr returns a pointer to v; handy for nullable test fixtures.
func Ptr[T any](v T) *T {
	return &v
}
