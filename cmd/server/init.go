package main

import (
	"github.com/itkpf2018/webapp-KPF-sub005/config"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/database"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/global"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/logger"
)

// InitGlobal โหลด config, เชื่อมต่อฐานข้อมูล และเตรียม validator
// ขั้นไหนพลาดถือเป็น fatal ทั้งหมด — แอปที่คอนฟิกไม่ครบห้ามเปิดรับ request
func InitGlobal() {
	log := logger.GetAppLogger()

	cfg := config.NewConfig()
	if cfg == nil {
		log.Fatal("โหลด configuration ไม่สำเร็จ ตรวจไฟล์ config/env/<GO_ENV>.env")
	}
	global.ServerConfig = cfg

	client, err := database.GetInstance(cfg)
	if err != nil {
		log.Fatalf("เชื่อมต่อฐานข้อมูลไม่สำเร็จ: %v", err)
	}
	global.MongoClient = client

	global.InitValidator()

	log.WithFields(map[string]interface{}{
		"timezone":   cfg.Analytics_Timezone,
		"windowDays": cfg.Analytics_WindowDays,
		"topLimit":   cfg.Analytics_TopLimit,
	}).Info("โหลด configuration สำเร็จ")
}
