package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/database"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/global"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/logger"
)

// initLogger เตรียมระบบ log ก่อนส่วนอื่นทั้งหมด
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("init logger ไม่สำเร็จ: %v", err))
	}
	logger.GetAppLogger().Info("ระบบ log พร้อมใช้งาน")
}

// mainThread สร้าง Fiber app แล้วเปิดรับ request บน main thread
func mainThread() {
	log := logger.GetAppLogger()

	app := InitFiberApp()

	address := global.ServerConfig.Address
	log.WithFields(map[string]interface{}{
		"address": address,
	}).Info("เริ่มเปิด server")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("เปิด server ไม่สำเร็จ: %v", err)
	}
}

func main() {
	initLogger()
	InitGlobal()
	InitRegistry()

	defer func() {
		if global.MongoClient != nil {
			_ = database.CloseInstance(global.MongoClient)
		}
	}()

	mainThread()
}
