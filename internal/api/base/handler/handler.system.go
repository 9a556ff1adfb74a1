package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/common"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/global"
)

// SystemHandler จัดการ route เกี่ยวกับสถานะระบบ
type SystemHandler struct{}

// NewSystemHandler สร้าง SystemHandler ใหม่
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth ตรวจสถานะระบบ (API + การเชื่อมต่อฐานข้อมูล)
// คืน 503 เมื่อ ping ฐานข้อมูลไม่ผ่าน
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services": fiber.Map{
			"api": "ok",
		},
	}

	if global.MongoClient != nil {
		if err := global.MongoClient.Ping(ctx, nil); err != nil {
			healthData["status"] = "degraded"
			healthData["services"].(fiber.Map)["database"] = "error"
			healthData["database_error"] = err.Error()
			return c.Status(common.StatusServiceUnavailable).JSON(fiber.Map{
				"code":    common.StatusServiceUnavailable,
				"message": "ระบบขัดข้อง",
				"data":    healthData,
				"status":  "error",
			})
		}
		healthData["services"].(fiber.Map)["database"] = "ok"
	} else {
		healthData["status"] = "degraded"
		healthData["services"].(fiber.Map)["database"] = "not_initialized"
	}

	return c.Status(common.StatusOK).JSON(fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    healthData,
		"status":  "success",
	})
}
