package mailbox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtures(t *testing.T) {
	emails := Fixtures()
	require.Len(t, emails, 8)

	seen := make(map[string]bool)
	emptyBodies := 0
	for _, email := range emails {
		assert.NotEmpty(t, email.ID)
		assert.False(t, seen[email.ID], "duplicate id %s", email.ID)
		seen[email.ID] = true
		if strings.TrimSpace(email.Body) == "" {
			emptyBodies++
		}
	}
	// Exactly one fixture exercises the empty-body edge case.
	assert.Equal(t, 1, emptyBodies)
}
