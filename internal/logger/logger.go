package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig ค่าคอนฟิกของระบบ log ทั้งหมด อ่านจาก environment ได้
type LogConfig struct {
	Level      string // debug | info | warn | error
	Format     string // text | json
	Output     string // stdout | file | both
	LogPath    string // โฟลเดอร์เก็บไฟล์ log
	AppFile    string // ชื่อไฟล์ log หลัก
	ErrorFile  string // ชื่อไฟล์ log ข้อผิดพลาด
	MaxSize    int    // ขนาดไฟล์สูงสุด (MB) ก่อน rotate
	MaxBackups int    // จำนวนไฟล์เก่าที่เก็บไว้
	MaxAge     int    // จำนวนวันเก็บไฟล์เก่า
	Compress   bool   // บีบอัดไฟล์เก่า
}

// DefaultConfig คืนค่าคอนฟิก log เริ่มต้น (override ด้วย env LOG_*)
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "both",
		LogPath:    "logs",
		AppFile:    "app.log",
		ErrorFile:  "error.log",
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	return cfg
}

var (
	// loggers เก็บ logger instances ตามชื่อ
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	// config คอนฟิกของระบบ log
	config *LogConfig

	// rootDir ที่อยู่รากของโปรเจกต์ (ใช้หาโฟลเดอร์ logs)
	rootDir string
)

// Init เริ่มระบบ log ด้วยคอนฟิกที่ให้มา (nil = ใช้ค่าเริ่มต้น)
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if err := initRootDir(); err != nil {
		return fmt.Errorf("ไม่สามารถหา root directory: %w", err)
	}

	logPath := getLogPath()
	if err := os.MkdirAll(logPath, 0755); err != nil {
		return fmt.Errorf("สร้างโฟลเดอร์ logs ไม่สำเร็จ: %w", err)
	}

	return nil
}

// initRootDir หา rootDir ของโปรเจกต์
// ลำดับ: env LOG_ROOT_DIR → executable path → เดินขึ้นจาก working directory
func initRootDir() error {
	if rootDir != "" {
		return nil
	}

	if envRootDir := os.Getenv("LOG_ROOT_DIR"); envRootDir != "" {
		if resolved, err := filepath.EvalSymlinks(envRootDir); err == nil {
			rootDir = resolved
			return nil
		}
		rootDir = envRootDir
		return nil
	}

	if executable, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(executable); err == nil {
			executable = resolved
		}
		// รากโปรเจกต์อยู่สองชั้นเหนือ cmd/server
		candidate := filepath.Dir(filepath.Dir(filepath.Dir(executable)))
		if _, err := os.Stat(filepath.Join(candidate, "config")); err == nil {
			rootDir = candidate
			return nil
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("อ่าน working directory ไม่ได้: %v", err)
	}

	currentDir := wd
	for i := 0; i < 5; i++ {
		if _, err := os.Stat(filepath.Join(currentDir, "config")); err == nil {
			rootDir = currentDir
			return nil
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	rootDir = wd
	return nil
}

// getLogPath คืนที่อยู่โฟลเดอร์ logs
func getLogPath() string {
	if filepath.IsAbs(config.LogPath) {
		return config.LogPath
	}
	return filepath.Join(rootDir, config.LogPath)
}

// GetLogger คืน logger ตามชื่อ (app, error) สร้างใหม่ถ้ายังไม่มี
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("เริ่มระบบ log ไม่สำเร็จ: %v", err))
		}
	}

	if logger, ok := loggers[name]; ok {
		return logger
	}

	logger := createLogger(name)
	loggers[name] = logger

	return logger
}

// createLogger สร้าง logger ใหม่ตามคอนฟิก
func createLogger(name string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				s := strings.Split(f.Function, ".")
				funcName := s[len(s)-1]
				return funcName, fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	// แยก writer ของไฟล์กับ stdout แล้วเขียนผ่าน async hook
	// ถ้าเขียนตรง ๆ ด้วย MultiWriter ตอน file I/O ช้าจะ block stdout และ request handling
	var writers []io.Writer

	if config.Output == "file" || config.Output == "both" {
		fileWriter := &lumberjack.Logger{
			Filename:   getLogFilePath(name),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		writers = append(writers, fileWriter)
	}

	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	if len(writers) > 0 {
		asyncHook := NewAsyncHookWithWriters(writers, 1000)
		logger.AddHook(asyncHook)
		// ปิด output ปกติเพื่อไม่ให้ log ซ้ำ — hook จัดการเขียนทั้งหมด
		logger.SetOutput(io.Discard)
	}

	logger.SetReportCaller(true)

	logger.WithFields(logrus.Fields{
		"log_file": getLogFilePath(name),
		"level":    logger.GetLevel().String(),
		"format":   config.Format,
		"output":   config.Output,
	}).Info("Logger initialized successfully")

	return logger
}

// getLogFilePath คืนที่อยู่ไฟล์ log ของ logger ตามชื่อ
func getLogFilePath(name string) string {
	logPath := getLogPath()
	var filename string

	switch name {
	case "app":
		filename = config.AppFile
	case "error":
		filename = config.ErrorFile
	default:
		filename = fmt.Sprintf("%s.log", name)
	}

	return filepath.Join(logPath, filename)
}

// GetAppLogger คืน logger หลักของแอปพลิเคชัน
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetErrorLogger คืน logger สำหรับข้อผิดพลาด
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}
