package controllers

import (
	courseModels "courseadmin/models/course"
	"courseadmin/ordering"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCaptureTreeStripsIdentities(t *testing.T) {
	db := openTestDB(t)

	seedHierarchy(t, db, []ordering.ImportRecord{
		{Module: "Intro", Title: "Welcome", VideoIframe: "<iframe src=\"a\"></iframe>"},
		{Module: "Intro", Title: "Setup"},
		{Module: "Advanced", Title: "Deep dive"},
	})

	tree, err := CaptureTree(db)
	require.NoError(t, err)

	require.Len(t, tree.Modules, 2)
	assert.Equal(t, "Intro", tree.Modules[0].Name)
	assert.Equal(t, 0, tree.Modules[0].Position)
	require.Len(t, tree.Modules[0].Lessons, 2)
	assert.Equal(t, "Welcome", tree.Modules[0].Lessons[0].Title)
	assert.Equal(t, "<iframe src=\"a\"></iframe>", tree.Modules[0].Lessons[0].VideoIframe)
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := openTestDB(t)

	original := []ordering.ImportRecord{
		{Module: "M1", Title: "L1", VideoIframe: "<iframe>1</iframe>"},
		{Module: "M1", Title: "L2"},
		{Module: "M2", Title: "L3", VideoIframe: "<iframe>3</iframe>"},
	}
	seedHierarchy(t, db, original)

	tree, err := CaptureTree(db)
	require.NoError(t, err)

	// Mutate the live hierarchy, then restore the capture.
	seedHierarchy(t, db, []ordering.ImportRecord{
		{Module: "Other", Title: "Unrelated"},
	})

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return ReplaceAllGroups(tx, TreeGroups(tree))
	}))

	// Names, positions, titles and media all come back; ids may differ.
	restored, err := CaptureTree(db)
	require.NoError(t, err)
	assert.Equal(t, tree, restored)
}

func TestSnapshotRoundTripKeepsEmptyModules(t *testing.T) {
	db := openTestDB(t)

	seedHierarchy(t, db, []ordering.ImportRecord{
		{Module: "HasLessons", Title: "L1"},
	})
	// An empty module can't come in through the flat record format, but it
	// is a perfectly valid part of the hierarchy.
	require.NoError(t, db.Create(&courseModels.Module{Name: "Empty", Position: 1}).Error)

	tree, err := CaptureTree(db)
	require.NoError(t, err)
	require.Len(t, tree.Modules, 2)

	seedHierarchy(t, db, []ordering.ImportRecord{
		{Module: "Other", Title: "Unrelated"},
	})

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return ReplaceAllGroups(tx, TreeGroups(tree))
	}))

	restored, err := CaptureTree(db)
	require.NoError(t, err)
	require.Len(t, restored.Modules, 2)
	assert.Equal(t, "HasLessons", restored.Modules[0].Name)
	assert.Equal(t, 0, restored.Modules[0].Position)
	assert.Equal(t, "Empty", restored.Modules[1].Name)
	assert.Equal(t, 1, restored.Modules[1].Position)
	assert.Empty(t, restored.Modules[1].Lessons)
}

func TestTreeGroupsFollowsStoredPositions(t *testing.T) {
	// A tree whose slices arrive out of position order still groups by
	// position, so restore and import agree on the result.
	tree := courseModels.SnapshotTree{
		Modules: []courseModels.SnapshotModule{
			{
				Name:     "Second",
				Position: 1,
				Lessons: []courseModels.SnapshotLesson{
					{Title: "S1", Position: 0},
				},
			},
			{
				Name:     "First",
				Position: 0,
				Lessons: []courseModels.SnapshotLesson{
					{Title: "F2", Position: 1},
					{Title: "F1", Position: 0},
				},
			},
			{
				Name:     "Third",
				Position: 2,
			},
		},
	}

	groups := TreeGroups(tree)
	require.Len(t, groups, 3)
	assert.Equal(t, "First", groups[0].Name)
	require.Len(t, groups[0].Lessons, 2)
	assert.Equal(t, "F1", groups[0].Lessons[0].Title)
	assert.Equal(t, "F2", groups[0].Lessons[1].Title)
	assert.Equal(t, "Second", groups[1].Name)
	require.Len(t, groups[1].Lessons, 1)
	assert.Equal(t, "Third", groups[2].Name)
	assert.Empty(t, groups[2].Lessons)
}

func TestExportImportRoundTrip(t *testing.T) {
	db := openTestDB(t)

	original := []ordering.ImportRecord{
		{Module: "M1", Title: "L1", VideoIframe: "<iframe>x</iframe>"},
		{Module: "M2", Title: "L2"},
		{Module: "M1", Title: "L3"},
	}
	seedHierarchy(t, db, original)

	exported, err := exportRecords(db)
	require.NoError(t, err)

	// Re-import the export into a fresh store.
	other := openTestDB(t)
	require.NoError(t, other.Transaction(func(tx *gorm.DB) error {
		return ReplaceAllData(tx, exported)
	}))

	reExported, err := exportRecords(other)
	require.NoError(t, err)
	assert.Equal(t, exported, reExported)
}
