package housekeeping

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
)

// logsToKeep bounds how many timestamped log files survive pruning.
const logsToKeep = 10

// InitLogging builds the process logger, teeing to stderr and a
// timestamped file in the log dir, and installs it as the zap global.
// The caller should defer logger.Sync().
func InitLogging(version string) (*zap.Logger, error) {
	dir, err := LogDir()
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("wildclans_%s.log", time.Now().Format("20060102_150405"))

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr", filepath.Join(dir, name)}
	logger, err := cfg.Build(zap.Fields(zap.String("version", version)))
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// PruneOldLogs prunes the standard log dir with the default retention.
func PruneOldLogs() error {
	dir, err := LogDir()
	if err != nil {
		return err
	}
	return PruneLogs(dir, logsToKeep)
}

// PruneLogs deletes the oldest log files in dir beyond keep, and any empty
// ones regardless of age.
func PruneLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	type logFile struct {
		path string
		mod  time.Time
	}
	var logs []logFile
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if info.Size() == 0 {
			os.Remove(path)
			continue
		}
		logs = append(logs, logFile{path: path, mod: info.ModTime()})
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].mod.After(logs[j].mod) })
	for i := keep; i < len(logs); i++ {
		if err := os.Remove(logs[i].path); err != nil {
			return err
		}
	}
	return nil
}

// LogPanic is deferred at the top of main so crashes land in the log file
// before the process dies.
func LogPanic() {
	if r := recover(); r != nil {
		zap.L().Error("uncaught panic", zap.Any("panic", r), zap.Stack("stack"))
		zap.L().Sync()
		panic(r)
	}
}
