package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMovieRef(t *testing.T) {
	ref, ok := ParseMovieRef("603")
	require.True(t, ok)
	id, ext := ref.External()
	assert.True(t, ext)
	assert.Equal(t, int64(603), id)
	_, internal := ref.Internal()
	assert.False(t, internal)

	raw := uuid.New()
	ref, ok = ParseMovieRef(raw.String())
	require.True(t, ok)
	got, internal := ref.Internal()
	assert.True(t, internal)
	assert.Equal(t, raw, got)

	for _, bad := range []string{"", "abc", "12.5", "603x", "not-a-uuid-either"} {
		_, ok := ParseMovieRef(bad)
		assert.False(t, ok, "%q must be rejected", bad)
	}
}

func TestMovieRefString(t *testing.T) {
	assert.Equal(t, "603", ExternalRef(603).String())

	id := uuid.New()
	assert.Equal(t, id.String(), InternalRef(id).String())
}
