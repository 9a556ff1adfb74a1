// Package analyticshdl - ชั้น HTTP ของ analytics module
package analyticshdl

import (
	analyticssvc "github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/service"
)

// AnalyticsHandler จัดการ route ทั้งหมดของ analytics
type AnalyticsHandler struct {
	service *analyticssvc.AnalyticsService
}

// NewAnalyticsHandler สร้าง handler พร้อม service ข้างใน
// ต้องเรียกหลัง init config + registry collection แล้วเท่านั้น
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	service, err := analyticssvc.NewAnalyticsService()
	if err != nil {
		return nil, err
	}
	return &AnalyticsHandler{service: service}, nil
}
