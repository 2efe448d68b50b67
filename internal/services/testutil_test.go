package services

import (
	"testing"

	"newsgrove/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// One connection, or every pooled connection gets its own :memory: db.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.Item{}, &models.ItemChild{}, &models.User{}))
	return gdb
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func seedItem(t *testing.T, gdb *gorm.DB, item models.Item) {
	t.Helper()
	require.NoError(t, gdb.Create(&item).Error)
}

func seedStory(t *testing.T, gdb *gorm.DB, id int64, title string, score int, time int64) {
	t.Helper()
	seedItem(t, gdb, models.Item{
		ID:    id,
		Kind:  models.KindStory,
		Title: strPtr(title),
		Score: intPtr(score),
		Time:  int64Ptr(time),
	})
}

func seedComment(t *testing.T, gdb *gorm.DB, id int64, text string) {
	t.Helper()
	seedItem(t, gdb, models.Item{
		ID:   id,
		Kind: models.KindComment,
		Text: strPtr(text),
	})
}

func linkChild(t *testing.T, gdb *gorm.DB, parent, kid int64, order int) {
	t.Helper()
	require.NoError(t, gdb.Create(&models.ItemChild{Item: parent, Kid: kid, DisplayOrder: order}).Error)
}
