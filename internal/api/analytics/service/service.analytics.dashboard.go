// Dashboard Composer — ประกอบผลทุก component เป็น payload เดียวของหน้า dashboard
package analyticssvc

import (
	"context"
	"time"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/dto"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/models"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/logger"
)

// ComposeDashboard ประกอบ dashboard จาก record ที่ normalize แล้ว
// pure function: ref ถูก capture ครั้งเดียวโดยผู้เรียก ทุก component ใช้ ref เดียวกัน
// จึงไม่มีทางที่ timeline กับ KPI เห็นขอบ window คนละจุด
func (e *Engine) ComposeDashboard(attendance []models.AttendanceRecord, sales []models.SalesRecord, dropped int, ref time.Time) dto.DashboardData {
	timeline := e.BuildTimeline(attendance, sales, ref)
	kpis := e.ComputeKPIs(attendance, sales, timeline, ref)
	correlation := e.AnalyzeCorrelation(timeline)

	return dto.DashboardData{
		KPIs:        kpis,
		Timeline:    timeline,
		Heatmaps:    e.BuildHeatmaps(attendance, sales, ref),
		Stores:      e.RollupStores(attendance, sales, ref),
		Employees:   e.RollupEmployees(attendance, sales, ref),
		Products:    e.RollupProducts(sales, ref),
		Correlation: correlation,
		Alerts:      e.GenerateAlerts(kpis, correlation),
		Metadata: dto.DashboardMetadata{
			AttendanceCount: len(attendance),
			SalesCount:      len(sales),
			DroppedCount:    dropped,
			WindowDays:      e.windowDays,
			GeneratedAt:     ref.In(e.loc).Format(time.RFC3339),
			Timezone:        e.timezone,
		},
	}
}

// GetDashboard ดึง event + master data แล้วประกอบ dashboard
// storeID ว่าง = ทุกสาขา, ไม่ว่าง = กรองทั้ง attendance และ sales เหลือสาขาเดียว
func (s *AnalyticsService) GetDashboard(ctx context.Context, storeID string) (dto.DashboardData, error) {
	ref := time.Now()

	events, err := s.fetchEvents(ctx, []string{models.ScopeAttendance, models.ScopeSales})
	if err != nil {
		return dto.DashboardData{}, err
	}
	md, err := s.fetchMasterData(ctx)
	if err != nil {
		return dto.DashboardData{}, err
	}

	normalized := s.Normalize(events, md)
	attendance := normalized.Attendance
	sales := normalized.Sales
	if storeID != "" {
		attendance = filterAttendanceByStore(attendance, storeID)
		sales = filterSalesByStore(sales, storeID)
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"storeId":    storeID,
		"attendance": len(attendance),
		"sales":      len(sales),
		"dropped":    normalized.Dropped,
	}).Info("ประกอบ dashboard")

	return s.ComposeDashboard(attendance, sales, normalized.Dropped, ref), nil
}

// filterAttendanceByStore กรอง record เข้างานเหลือเฉพาะสาขาที่ขอ
func filterAttendanceByStore(records []models.AttendanceRecord, storeID string) []models.AttendanceRecord {
	filtered := make([]models.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		if rec.StoreID == storeID {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// filterSalesByStore กรอง record ขายเหลือเฉพาะสาขาที่ขอ
func filterSalesByStore(records []models.SalesRecord, storeID string) []models.SalesRecord {
	filtered := make([]models.SalesRecord, 0, len(records))
	for _, rec := range records {
		if rec.StoreID == storeID {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
