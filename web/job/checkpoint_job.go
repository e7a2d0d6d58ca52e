// Package job contains scheduled background jobs run by the web server.
package job

import (
	"portfolio/database"
	"portfolio/logger"
)

// CheckpointJob flushes the sqlite WAL into the main database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("database checkpoint failed:", err)
	}
}
