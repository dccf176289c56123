package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPending_AllWhenNothingApplied(t *testing.T) {
	pending := Pending(map[string]bool{})

	assert.Len(t, pending, len(allMigrations))
	for i := 1; i < len(pending); i++ {
		assert.Less(t, pending[i-1].ID, pending[i].ID)
	}
}

func TestPending_SkipsApplied(t *testing.T) {
	applied := map[string]bool{"20240101120000_create_sections_table": true}

	pending := Pending(applied)

	assert.Len(t, pending, len(allMigrations)-1)
	for _, m := range pending {
		assert.NotEqual(t, "20240101120000_create_sections_table", m.ID)
	}
}

func TestMigrations_SectionsBeforeItems(t *testing.T) {
	pending := Pending(nil)

	assert.Contains(t, pending[0].UpSQL, "CREATE TABLE sections")
	assert.Contains(t, pending[1].UpSQL, "REFERENCES sections(slug)")
}
