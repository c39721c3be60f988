package ordering

import (
	"fmt"
	"strings"
)

// ImportRecord is one flattened lesson row. The same shape serves the import
// and export formats and the public read feed: module name, lesson title,
// raw embed markup and an always-null url kept for format compatibility.
type ImportRecord struct {
	Module      string  `json:"module"`
	Title       string  `json:"title"`
	VideoIframe string  `json:"videoIframe"`
	URL         *string `json:"url"`
}

// ModuleGroup is one module-to-be with its lessons in creation order.
type ModuleGroup struct {
	Name    string
	Lessons []LessonEntry
}

type LessonEntry struct {
	Title       string
	VideoIframe string
}

// ValidateRecords checks the whole batch before anything destructive runs.
// Every record must carry a non-empty module name and title; the first
// offending index is reported and nothing else is inspected.
func ValidateRecords(records []ImportRecord) error {
	for i, rec := range records {
		if strings.TrimSpace(rec.Module) == "" {
			return fmt.Errorf("record %d: missing module name", i)
		}
		if strings.TrimSpace(rec.Title) == "" {
			return fmt.Errorf("record %d: missing title", i)
		}
	}
	return nil
}

// GroupRecords buckets records by module name, keeping the first-seen order
// of distinct names as the module order and record order as the lesson order
// within each bucket. Positions are derived from that order alone; any
// position carried by the input is ignored.
func GroupRecords(records []ImportRecord) []ModuleGroup {
	groups := make([]ModuleGroup, 0)
	index := make(map[string]int)

	for _, rec := range records {
		i, seen := index[rec.Module]
		if !seen {
			i = len(groups)
			index[rec.Module] = i
			groups = append(groups, ModuleGroup{Name: rec.Module})
		}
		groups[i].Lessons = append(groups[i].Lessons, LessonEntry{
			Title:       rec.Title,
			VideoIframe: rec.VideoIframe,
		})
	}

	return groups
}
