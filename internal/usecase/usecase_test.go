package usecase

import (
	"path/filepath"
	"testing"

	"awami-saholat/internal/data/repository"
	"awami-saholat/pkg/database"
	"awami-saholat/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRepo builds a Repository dengan snapshot SQLite di temp dir.
// Path dikembalikan supaya test bisa membuka store kedua di file yang
// sama (simulasi restart).
func newTestRepo(t *testing.T) (*repository.Repository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshot.db")
	db, err := database.InitDB(utils.SnapshotConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewRepository(db, "Islamabad", zap.NewNop()), path
}

func reopenRepo(t *testing.T, path string) *repository.Repository {
	t.Helper()

	db, err := database.InitDB(utils.SnapshotConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewRepository(db, "Islamabad", zap.NewNop())
}

func testConfig() *utils.Config {
	return &utils.Config{
		App:     utils.AppConfig{Name: "awami-saholat"},
		Catalog: utils.CatalogConfig{DefaultCity: "Islamabad"},
	}
}
