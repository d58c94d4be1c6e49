package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugchub/ugchub-backend/internal/projects/domain"
)

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	require.Equal(t, 5, cat.Len())

	list := cat.List()
	ids := make([]string, len(list))
	for i, c := range list {
		ids[i] = c.ID
		assert.True(t, c.RelationStatus.Valid())
		assert.NotEmpty(t, c.Languages)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)

	ana, ok := cat.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Ana García", ana.Name)
	assert.Equal(t, "Fashion & Lifestyle", ana.Specialty)
	assert.Equal(t, 4.8, ana.Rating)
	assert.Equal(t, "Madrid, España", ana.Location)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	cat := DefaultCatalog()

	list := cat.List()
	list[0].Name = "changed"
	list[0].Languages[0] = "changed"

	got, _ := cat.Get("1")
	assert.Equal(t, "Ana García", got.Name)
	assert.Equal(t, "Español", got.Languages[0])
}

func TestParseCatalog_Errors(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		_, err := ParseCatalog([]byte(`
- {id: "1", name: A, relation_status: hired}
- {id: "1", name: B, relation_status: hired}
`))
		assert.ErrorIs(t, err, domain.ErrDuplicateCreatorID)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := ParseCatalog([]byte(`- {name: A, relation_status: hired}`))
		assert.Error(t, err)
	})

	t.Run("unknown relation status", func(t *testing.T) {
		_, err := ParseCatalog([]byte(`- {id: "1", name: A, relation_status: pending}`))
		assert.Error(t, err)
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := ParseCatalog([]byte("{{"))
		assert.Error(t, err)
	})
}

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, 5, cat.Len())

	path := filepath.Join(t.TempDir(), "creators.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`- {id: "x", name: X, relation_status: negotiating}`), 0o600))

	cat, err = LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
