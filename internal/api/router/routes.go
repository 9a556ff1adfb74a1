// Package router - รวมการลงทะเบียน route ทั้งหมดของแอป
package router

import (
	"github.com/gofiber/fiber/v3"

	analyticshdl "github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/handler"
	basehdl "github.com/itkpf2018/webapp-KPF-sub005/internal/api/base/handler"
)

// RoutePrefix prefix พื้นฐานของ API
type RoutePrefix struct {
	Base string // /api
	V1   string // /api/v1
}

// NewRoutePrefix สร้าง RoutePrefix ด้วยค่ามาตรฐาน
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// SetupRoutes ลงทะเบียน route ทั้งหมด
// handler ของ analytics สร้างที่นี่ครั้งเดียว — สร้างไม่สำเร็จถือเป็น error ตอน start
func SetupRoutes(app *fiber.App) error {
	prefix := NewRoutePrefix()

	systemHandler := basehdl.NewSystemHandler()
	app.Get("/health", systemHandler.HandleHealth)

	analyticsHandler, err := analyticshdl.NewAnalyticsHandler()
	if err != nil {
		return err
	}

	analytics := app.Group(prefix.V1 + "/analytics")
	analytics.Get("/dashboard", analyticsHandler.HandleGetDashboard)
	analytics.Get("/reports/sales-comparison", analyticsHandler.HandleGetSalesComparison)

	return nil
}
