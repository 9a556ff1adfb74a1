package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration เก็บค่าคอนฟิกคงที่ที่ต้องใช้ตอนรันแอปพลิเคชัน
// อ่านจากไฟล์ env ตาม GO_ENV แล้ว parse ด้วย caarlos0/env
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // ที่อยู่ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URI เชื่อมต่อฐานข้อมูล
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // ชื่อฐานข้อมูลหลัก
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // origins ที่อนุญาต (คั่นด้วย comma, * = ทั้งหมด)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // อนุญาตส่ง credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // จำนวน request สูงสุดต่อ window (0 = ปิด)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // ความยาว window (วินาที)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // เปิด/ปิด rate limiting

	// Analytics Engine Configuration
	// Timezone ต้องเป็น IANA identifier ที่ถูกต้อง — ถ้าผิดถือเป็น fatal ตอน start
	// ไม่ default เงียบ ๆ เพราะจะทำให้การ bucket ตามวันผิดทุกการคำนวณ
	Analytics_Timezone   string `env:"ANALYTICS_TIMEZONE" envDefault:"Asia/Bangkok"` // timezone สำหรับ bucket เวลา
	Analytics_WindowDays int    `env:"ANALYTICS_WINDOW_DAYS" envDefault:"30"`        // ความยาว window เปรียบเทียบ (วัน)
	Analytics_TopLimit   int    `env:"ANALYTICS_TOP_LIMIT" envDefault:"10"`          // จำนวนอันดับสูงสุดต่อมิติใน rollup

	// Alert Thresholds (หน่วย: เปอร์เซ็นต์ของ growth ยกเว้น correlation)
	Alert_RevenueCritical float64 `env:"ALERT_REVENUE_CRITICAL" envDefault:"-20"` // ยอดขายตกเกินนี้ = critical
	Alert_RevenueWarning  float64 `env:"ALERT_REVENUE_WARNING" envDefault:"-10"`  // ยอดขายตกเกินนี้ = warning
	Alert_CheckInWarning  float64 `env:"ALERT_CHECKIN_WARNING" envDefault:"-15"`  // การเข้างานตกเกินนี้ = warning
	Alert_CorrelationInfo float64 `env:"ALERT_CORRELATION_INFO" envDefault:"0.3"` // |correlation| ต่ำกว่านี้ = info
}

// getEnvPath หาที่อยู่ไฟล์ env ตามสภาพแวดล้อม (GO_ENV, default = development)
func getEnvPath() string {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// ใช้ fmt.Printf เพราะ logger อาจยังไม่ได้ init ตรงนี้
		fmt.Printf("ไม่สามารถอ่าน working directory: %v\n", err)
		return ""
	}

	// เดินขึ้นไปหาโฟลเดอร์ config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", goEnv))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig อ่านค่าคอนฟิกจากไฟล์ env แล้ว parse เป็น Configuration
// คืน nil เมื่อหาไฟล์ไม่เจอหรือ parse ไม่ผ่าน (ผู้เรียกต้องถือเป็น fatal)
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("ไม่พบโฟลเดอร์ config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("โหลดไฟล์ env ที่ %s ไม่สำเร็จ: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("parse config ไม่สำเร็จ: %+v\n", err)
		return nil
	}

	return &cfg
}
