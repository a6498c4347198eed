package postgres

import (
	"regexp"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_SourceIsReadable(t *testing.T) {
	source, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer source.Close()

	first, err := source.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := source.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)
}

// Períodos e dados do histórico vêm do JSON sem limite de tamanho
func TestMigrations_FreeTextColumnsAreUnbounded(t *testing.T) {
	tests := []struct {
		file    string
		columns []string
	}{
		{
			file:    "migrations/000001_create_send_history.up.sql",
			columns: []string{"period", "plate", "customer_name", "phone", "sent_at"},
		},
		{
			file:    "migrations/000002_create_return_period_snapshots.up.sql",
			columns: []string{"period"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			ddl, err := migrationsFS.ReadFile(tt.file)
			require.NoError(t, err)

			for _, column := range tt.columns {
				definition := regexp.MustCompile(`(?m)^\s*` + column + `\s+(\S+)`).FindSubmatch(ddl)
				require.NotNil(t, definition, "coluna %s não encontrada", column)
				assert.Equal(t, "TEXT", string(definition[1]), "coluna %s", column)
			}
		})
	}
}
