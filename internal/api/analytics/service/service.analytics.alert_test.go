package analyticssvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/dto"
)

// kpisWithGrowth สร้างชุด KPI ที่กำหนด growth ของยอดขายกับการเข้างาน
func kpisWithGrowth(revenueGrowth, checkInGrowth float64) dto.DashboardKPIs {
	return dto.DashboardKPIs{
		Revenue:  dto.KPIResult{GrowthPercent: revenueGrowth},
		CheckIns: dto.KPIResult{GrowthPercent: checkInGrowth},
	}
}

func TestGenerateAlerts(t *testing.T) {
	engine := newTestEngine(t)
	okCorrelation := dto.CorrelationResult{Value: 0.8, Strength: StrengthStrong}

	t.Run("ทุกอย่างปกติได้ slice ว่างไม่ใช่ nil", func(t *testing.T) {
		alerts := engine.GenerateAlerts(kpisWithGrowth(5, 5), okCorrelation)
		assert.NotNil(t, alerts)
		assert.Empty(t, alerts)
	})

	t.Run("ยอดขายตกเกินเกณฑ์ critical", func(t *testing.T) {
		alerts := engine.GenerateAlerts(kpisWithGrowth(-25, 0), okCorrelation)
		require.Len(t, alerts, 1)
		assert.Equal(t, AlertCritical, alerts[0].Type)
		assert.Contains(t, alerts[0].Message, "25.0%")
	})

	t.Run("ยอดขายตกระดับ warning ไม่ใช่ critical", func(t *testing.T) {
		alerts := engine.GenerateAlerts(kpisWithGrowth(-15, 0), okCorrelation)
		require.Len(t, alerts, 1)
		assert.Equal(t, AlertWarning, alerts[0].Type)
	})

	t.Run("ตกขอบเกณฑ์พอดียังไม่แจ้งเตือน", func(t *testing.T) {
		alerts := engine.GenerateAlerts(kpisWithGrowth(-10, -15), okCorrelation)
		assert.Empty(t, alerts)
	})

	t.Run("การเข้างานตกเกินเกณฑ์", func(t *testing.T) {
		alerts := engine.GenerateAlerts(kpisWithGrowth(0, -20), okCorrelation)
		require.Len(t, alerts, 1)
		assert.Equal(t, AlertWarning, alerts[0].Type)
		assert.Contains(t, alerts[0].Message, "เข้างาน")
	})

	t.Run("สหสัมพันธ์ต่ำได้ info", func(t *testing.T) {
		alerts := engine.GenerateAlerts(kpisWithGrowth(0, 0), dto.CorrelationResult{Value: 0.1})
		require.Len(t, alerts, 1)
		assert.Equal(t, AlertInfo, alerts[0].Type)
	})

	t.Run("หลายเงื่อนไขพร้อมกันเรียงลำดับคงที่ ยอดขาย-เข้างาน-สหสัมพันธ์", func(t *testing.T) {
		alerts := engine.GenerateAlerts(kpisWithGrowth(-30, -20), dto.CorrelationResult{Value: -0.05})
		require.Len(t, alerts, 3)
		assert.Equal(t, AlertCritical, alerts[0].Type)
		assert.Contains(t, alerts[0].Message, "ยอดขาย")
		assert.Equal(t, AlertWarning, alerts[1].Type)
		assert.Contains(t, alerts[1].Message, "เข้างาน")
		assert.Equal(t, AlertInfo, alerts[2].Type)
	})
}
