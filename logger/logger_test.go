package logger

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestGetLogsHonorsCount(t *testing.T) {
	InitLogger(logging.ERROR)
	logBuffer = nil

	for i := 0; i < 10; i++ {
		Infof("entry %d", i)
	}

	logs := GetLogs(5, "debug")
	assert.Len(t, logs, 5)

	// Newest first
	assert.Contains(t, logs[0], "entry 9")
	assert.Contains(t, logs[4], "entry 5")

	// Fewer entries than requested returns what exists
	logBuffer = nil
	Infof("only one")
	assert.Len(t, GetLogs(50, "debug"), 1)
}

func TestGetLogsFiltersByLevel(t *testing.T) {
	InitLogger(logging.ERROR)
	logBuffer = nil

	Debug("down in the weeds")
	Warning("something odd")
	Error("broke")

	logs := GetLogs(10, "warning")
	assert.Len(t, logs, 2)
	for _, line := range logs {
		assert.NotContains(t, line, "weeds")
	}
}
