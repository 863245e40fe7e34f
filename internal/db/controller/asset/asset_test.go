package asset

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.SiteAsset{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func createTestAsset(t *testing.T, db *gorm.DB, name, section string) *models.SiteAsset {
	t.Helper()

	a := models.SiteAsset{
		Name:        name,
		Section:     section,
		ContentType: "image/png",
		Data:        "aGVsbG8=",
	}

	require.NoError(t, Create(db, &a))

	return &a
}

func TestCreateAndGet(t *testing.T) {
	db := setupTestDB(t)

	err := Create(nil, &models.SiteAsset{})
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Get(nil, 1)
	require.ErrorIs(t, err, ErrDBNil)

	created := createTestAsset(t, db, "logo.png", "hero")
	assert.NotZero(t, created.ID)

	a, err := Get(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "logo.png", a.Name)
	assert.Equal(t, "hero", a.Section)
	assert.Equal(t, "image/png", a.ContentType)
	assert.Equal(t, "aGVsbG8=", a.Data)

	_, err = Get(db, 999)
	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestGetBySection(t *testing.T) {
	db := setupTestDB(t)

	_, err := GetBySection(nil, "hero")
	require.ErrorIs(t, err, ErrDBNil)

	first := createTestAsset(t, db, "one.png", "hero")
	second := createTestAsset(t, db, "two.png", "hero")
	createTestAsset(t, db, "other.png", "about")

	assets, err := GetBySection(db, "hero")
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, first.ID, assets[0].ID)
	assert.Equal(t, second.ID, assets[1].ID)

	assets, err = GetBySection(db, "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	err := Delete(nil, 1)
	require.ErrorIs(t, err, ErrDBNil)

	err = Delete(db, 999)
	require.ErrorIs(t, err, ErrAssetNotFound)

	a := createTestAsset(t, db, "logo.png", "hero")

	require.NoError(t, Delete(db, a.ID))

	_, err = Get(db, a.ID)
	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestMetaStripsData(t *testing.T) {
	db := setupTestDB(t)

	a := createTestAsset(t, db, "logo.png", "hero")

	meta := a.Meta()
	assert.Equal(t, a.ID, meta.ID)
	assert.Equal(t, a.Name, meta.Name)
	assert.Equal(t, a.Section, meta.Section)
	assert.Equal(t, a.ContentType, meta.ContentType)
}
