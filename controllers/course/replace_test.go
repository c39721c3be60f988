package controllers

import (
	courseModels "courseadmin/models/course"
	"courseadmin/ordering"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.Snapshot{},
	))
	return db
}

func seedHierarchy(t *testing.T, db *gorm.DB, records []ordering.ImportRecord) {
	t.Helper()
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return ReplaceAllData(tx, records)
	}))
}

func TestReplaceAllDataGrouping(t *testing.T) {
	db := openTestDB(t)

	records := []ordering.ImportRecord{
		{Module: "M1", Title: "L1"},
		{Module: "M2", Title: "L2"},
		{Module: "M1", Title: "L3"},
	}
	seedHierarchy(t, db, records)

	modules, err := fetchHierarchy(db)
	require.NoError(t, err)
	require.Len(t, modules, 2)

	// First-seen module order, not alphabetical.
	assert.Equal(t, "M1", modules[0].Name)
	assert.Equal(t, 0, modules[0].Position)
	assert.Equal(t, "M2", modules[1].Name)
	assert.Equal(t, 1, modules[1].Position)

	require.Len(t, modules[0].Lessons, 2)
	assert.Equal(t, "L1", modules[0].Lessons[0].Title)
	assert.Equal(t, 0, modules[0].Lessons[0].Position)
	assert.Equal(t, "L3", modules[0].Lessons[1].Title)
	assert.Equal(t, 1, modules[0].Lessons[1].Position)

	require.Len(t, modules[1].Lessons, 1)
	assert.Equal(t, "L2", modules[1].Lessons[0].Title)
	assert.Equal(t, 0, modules[1].Lessons[0].Position)
}

func TestReplaceAllDataWipesExistingTree(t *testing.T) {
	db := openTestDB(t)

	seedHierarchy(t, db, []ordering.ImportRecord{
		{Module: "Old", Title: "Old lesson", VideoIframe: "<iframe></iframe>"},
	})
	seedHierarchy(t, db, []ordering.ImportRecord{
		{Module: "New", Title: "New lesson"},
	})

	modules, err := fetchHierarchy(db)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "New", modules[0].Name)

	var lessonCount int64
	require.NoError(t, db.Model(&courseModels.Lesson{}).Count(&lessonCount).Error)
	assert.EqualValues(t, 1, lessonCount)
}

func TestReplaceAllDataIgnoresInputPositions(t *testing.T) {
	db := openTestDB(t)

	// ReplaceAllData derives positions from array order alone; the stored
	// snapshot shape carries positions, but a forged import cannot smuggle
	// its own — there is no position field on the wire format at all.
	seedHierarchy(t, db, []ordering.ImportRecord{
		{Module: "A", Title: "third"},
		{Module: "A", Title: "first"},
		{Module: "A", Title: "second"},
	})

	modules, err := fetchHierarchy(db)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	require.Len(t, modules[0].Lessons, 3)
	for i, lesson := range modules[0].Lessons {
		assert.Equal(t, i, lesson.Position)
	}
	assert.Equal(t, "third", modules[0].Lessons[0].Title)
}

func TestReplaceAllDataRejectsBadBatchUntouched(t *testing.T) {
	db := openTestDB(t)

	seedHierarchy(t, db, []ordering.ImportRecord{
		{Module: "Keep", Title: "Keep me"},
	})

	err := db.Transaction(func(tx *gorm.DB) error {
		return ReplaceAllData(tx, []ordering.ImportRecord{{Module: "M1"}})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 0: missing title")

	// Existing data survives a rejected batch.
	modules, err := fetchHierarchy(db)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "Keep", modules[0].Name)
	require.Len(t, modules[0].Lessons, 1)
}

func TestReplaceAllDataEmptyBatchClearsEverything(t *testing.T) {
	db := openTestDB(t)

	seedHierarchy(t, db, []ordering.ImportRecord{
		{Module: "M1", Title: "L1"},
	})
	seedHierarchy(t, db, nil)

	modules, err := fetchHierarchy(db)
	require.NoError(t, err)
	assert.Empty(t, modules)
}

// Positions stay dense across every sibling scope after a replace.
func TestReplaceAllDataDensity(t *testing.T) {
	db := openTestDB(t)

	seedHierarchy(t, db, []ordering.ImportRecord{
		{Module: "M1", Title: "a"},
		{Module: "M2", Title: "b"},
		{Module: "M3", Title: "c"},
		{Module: "M2", Title: "d"},
		{Module: "M1", Title: "e"},
	})

	modules, err := fetchHierarchy(db)
	require.NoError(t, err)
	for i, module := range modules {
		assert.Equal(t, i, module.Position)
		for j, lesson := range module.Lessons {
			assert.Equal(t, j, lesson.Position)
		}
	}
}
