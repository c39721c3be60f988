package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDragID(t *testing.T) {
	tests := []struct {
		tag       string
		wantScope Scope
		wantID    uint
		wantErr   bool
	}{
		{tag: "module-12", wantScope: ScopeModule, wantID: 12},
		{tag: "lesson-7", wantScope: ScopeLesson, wantID: 7},
		{tag: "module-0", wantErr: true},
		{tag: "module-abc", wantErr: true},
		{tag: "course-3", wantErr: true},
		{tag: "module", wantErr: true},
		{tag: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			scope, id, err := ParseDragID(tt.tag)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantScope, scope)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
