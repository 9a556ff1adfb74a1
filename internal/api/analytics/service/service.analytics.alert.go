// Alert Generator — เทียบ KPI กับ threshold แล้วออกรายการแจ้งเตือน
package analyticssvc

import (
	"fmt"
	"math"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/dto"
)

// ชนิดของ alert
const (
	AlertCritical = "critical"
	AlertWarning  = "warning"
	AlertInfo     = "info"
)

// GenerateAlerts ตรวจ KPI เทียบ threshold ตามลำดับคงที่: ยอดขาย, การเข้างาน, สหสัมพันธ์
// ลำดับนี้คือลำดับความสำคัญที่หน้าบ้านแสดงผล ห้ามสลับ
// ไม่มีอะไรผิดปกติได้ slice ว่าง ไม่ใช่ nil
func (e *Engine) GenerateAlerts(kpis dto.DashboardKPIs, correlation dto.CorrelationResult) []dto.Alert {
	alerts := []dto.Alert{}

	revenueGrowth := kpis.Revenue.GrowthPercent
	switch {
	case revenueGrowth < e.thresholds.RevenueCritical:
		alerts = append(alerts, dto.Alert{
			Type:    AlertCritical,
			Message: fmt.Sprintf("ยอดขายลดลง %.1f%% เทียบช่วง %d วันก่อนหน้า ต้องตรวจสอบด่วน", math.Abs(revenueGrowth), e.windowDays),
		})
	case revenueGrowth < e.thresholds.RevenueWarning:
		alerts = append(alerts, dto.Alert{
			Type:    AlertWarning,
			Message: fmt.Sprintf("ยอดขายลดลง %.1f%% เทียบช่วง %d วันก่อนหน้า", math.Abs(revenueGrowth), e.windowDays),
		})
	}

	checkInGrowth := kpis.CheckIns.GrowthPercent
	if checkInGrowth < e.thresholds.CheckInWarning {
		alerts = append(alerts, dto.Alert{
			Type:    AlertWarning,
			Message: fmt.Sprintf("การเข้างานลดลง %.1f%% เทียบช่วง %d วันก่อนหน้า", math.Abs(checkInGrowth), e.windowDays),
		})
	}

	if math.Abs(correlation.Value) < e.thresholds.CorrelationInfo {
		alerts = append(alerts, dto.Alert{
			Type:    AlertInfo,
			Message: fmt.Sprintf("การเข้างานกับยอดขายแทบไม่สัมพันธ์กัน (r = %.2f) ควรทบทวนการจัดกะ", correlation.Value),
		})
	}

	return alerts
}
