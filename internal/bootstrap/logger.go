package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/SkillForge_Go/internal/config"
	"github.com/osse101/SkillForge_Go/internal/logger"
)

// SetupLogger writes logs to stdout and to a fresh session file under
// cfg.LogDir, pruning old session files first. The caller closes the file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
	logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, cfg.Environment == logger.EnvironmentDev)
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", logFile.Name())
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"storage_driver", cfg.StorageDriver,
		"curve_rounding", cfg.CurveRounding,
		"catalog_path", cfg.CatalogPath,
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs deletes the oldest session logs so that at most keep remain.
// Names embed a sortable timestamp and os.ReadDir returns them sorted.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}

	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[i], "error", err)
		}
	}
}
