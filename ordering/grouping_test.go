package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupRecordsFirstSeenOrder(t *testing.T) {
	records := []ImportRecord{
		{Module: "M1", Title: "L1"},
		{Module: "M2", Title: "L2"},
		{Module: "M1", Title: "L3"},
	}

	groups := GroupRecords(records)

	// Module order is first-seen, not alphabetical.
	assert.Len(t, groups, 2)
	assert.Equal(t, "M1", groups[0].Name)
	assert.Equal(t, "M2", groups[1].Name)

	assert.Equal(t, []LessonEntry{{Title: "L1"}, {Title: "L3"}}, groups[0].Lessons)
	assert.Equal(t, []LessonEntry{{Title: "L2"}}, groups[1].Lessons)
}

func TestGroupRecordsKeepsMedia(t *testing.T) {
	records := []ImportRecord{
		{Module: "Intro", Title: "Welcome", VideoIframe: `<iframe src="https://player.example/1"></iframe>`},
	}

	groups := GroupRecords(records)
	assert.Equal(t, records[0].VideoIframe, groups[0].Lessons[0].VideoIframe)
}

func TestGroupRecordsEmptyInput(t *testing.T) {
	assert.Empty(t, GroupRecords(nil))
}

func TestValidateRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []ImportRecord
		wantErr string
	}{
		{
			name:    "valid batch",
			records: []ImportRecord{{Module: "M1", Title: "L1"}, {Module: "M2", Title: "L2"}},
		},
		{
			name:    "empty batch is valid",
			records: nil,
		},
		{
			name:    "missing title rejects the batch",
			records: []ImportRecord{{Module: "M1"}},
			wantErr: "record 0: missing title",
		},
		{
			name:    "missing module name rejects the batch",
			records: []ImportRecord{{Module: "M1", Title: "L1"}, {Title: "L2"}},
			wantErr: "record 1: missing module name",
		},
		{
			name:    "whitespace-only title counts as missing",
			records: []ImportRecord{{Module: "M1", Title: "   "}},
			wantErr: "record 0: missing title",
		},
		{
			name: "first offending index is reported",
			records: []ImportRecord{
				{Module: "M1", Title: "L1"},
				{Module: "M2"},
				{Title: "L3"},
			},
			wantErr: "record 1: missing title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecords(tt.records)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
