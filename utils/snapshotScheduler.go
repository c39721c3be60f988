package utils

import (
	"courseadmin/config"
	courseControllers "courseadmin/controllers/course"
	"courseadmin/database"
	courseModels "courseadmin/models/course"
	"encoding/json"
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SNAPSHOT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartSnapshotScheduler runs the automatic snapshot job when SNAPSHOT_CRON
// is configured. Each run captures the hierarchy under a dated name and
// prunes automatic snapshots beyond the retention count. Manual snapshots
// are never pruned.
func StartSnapshotScheduler() {
	spec := config.AppConfig.SnapshotCron
	if spec == "" {
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, takeAutoSnapshot); err != nil {
		logScheduler("invalid SNAPSHOT_CRON spec: " + err.Error())
		return
	}
	c.Start()
	logScheduler("started with spec " + spec)
}

func takeAutoSnapshot() {
	db := database.Database.Db

	// One automatic snapshot per day: runs within the same day reuse the name
	// and skip.
	name := "auto-" + now.BeginningOfDay().Format("2006-01-02")

	var existing int64
	if err := db.Model(&courseModels.Snapshot{}).Where("name = ?", name).Count(&existing).Error; err != nil {
		logScheduler("failed to check existing snapshot: " + err.Error())
		return
	}
	if existing > 0 {
		return
	}

	tree, err := courseControllers.CaptureTree(db)
	if err != nil {
		logScheduler("failed to capture hierarchy: " + err.Error())
		return
	}

	payload, err := json.Marshal(tree)
	if err != nil {
		logScheduler("failed to encode snapshot: " + err.Error())
		return
	}

	snapshot := courseModels.Snapshot{Name: name, Data: datatypes.JSON(payload)}
	if err := db.Create(&snapshot).Error; err != nil {
		logScheduler("failed to save snapshot: " + err.Error())
		return
	}
	logScheduler("captured " + name)

	pruneAutoSnapshots(db)
}

func pruneAutoSnapshots(db *gorm.DB) {
	keep := config.AppConfig.SnapshotKeep
	if keep <= 0 {
		return
	}

	var stale []courseModels.Snapshot
	if err := db.Where("name LIKE ?", "auto-%").
		Order("created_at desc, id desc").
		Offset(keep).
		Find(&stale).Error; err != nil {
		logScheduler("failed to list stale snapshots: " + err.Error())
		return
	}

	for _, snapshot := range stale {
		if err := db.Unscoped().Delete(&snapshot).Error; err != nil {
			logScheduler("failed to prune snapshot " + snapshot.Name + ": " + err.Error())
		}
	}
}
