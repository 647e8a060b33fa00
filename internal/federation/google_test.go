package federation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdentity(t *testing.T) {
	fed, err := normalizeIdentity("user@gmail.com", "google-subject")
	require.NoError(t, err)
	assert.Equal(t, "user@gmail.com", fed.Email)
	assert.Equal(t, "google-subject", fed.SubjectID)
}

func TestNormalizeIdentity_MissingClaims(t *testing.T) {
	_, err := normalizeIdentity("", "google-subject")
	require.Error(t, err)

	_, err = normalizeIdentity("user@gmail.com", "")
	require.Error(t, err)
}
