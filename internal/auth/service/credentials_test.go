package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugchub/ugchub-backend/internal/auth/domain"
)

func TestDefaultCredentials(t *testing.T) {
	table := DefaultCredentials()

	require.Len(t, table, 2)
	assert.Equal(t, "marca@test.com", table[domain.RoleBrand].Email)
	assert.Equal(t, "creador123", table[domain.RoleCreator].Password)
}

func TestParseCredentials(t *testing.T) {
	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := ParseCredentials([]byte("admin:\n  email: a@b.c\n  password: x\n"))
		assert.ErrorIs(t, err, domain.ErrUnknownRole)
	})

	t.Run("rejects missing password", func(t *testing.T) {
		_, err := ParseCredentials([]byte("marca:\n  email: a@b.c\n"))
		assert.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := ParseCredentials([]byte("marca: [unterminated"))
		assert.Error(t, err)
	})
}

func TestLoadCredentials(t *testing.T) {
	t.Run("empty path uses embedded table", func(t *testing.T) {
		table, err := LoadCredentials("")
		require.NoError(t, err)
		assert.Len(t, table, 2)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.yaml")
		require.NoError(t, os.WriteFile(path, []byte("marca:\n  email: brand@acme.io\n  password: s3cret\n  name: Acme\n"), 0o600))

		table, err := LoadCredentials(path)
		require.NoError(t, err)

		name, ok := table.Match("brand@acme.io", "s3cret", domain.RoleBrand)
		assert.True(t, ok)
		assert.Equal(t, "Acme", name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCredentials(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestLooseCredentials(t *testing.T) {
	var loose LooseCredentials

	name, ok := loose.Match("ana@example.com", "anything", domain.RoleCreator)
	assert.True(t, ok)
	assert.Equal(t, "ana", name)

	_, ok = loose.Match("ana@example.com", "", domain.RoleCreator)
	assert.False(t, ok)

	_, ok = loose.Match("  ", "pw", domain.RoleBrand)
	assert.False(t, ok)

	_, ok = loose.Match("ana@example.com", "pw", domain.Role("admin"))
	assert.False(t, ok)

	name, ok = loose.Match("noatsign", "pw", domain.RoleBrand)
	assert.True(t, ok)
	assert.Equal(t, "noatsign", name)
}
