package analyticssvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/models"
)

func TestComposeDashboardEmpty(t *testing.T) {
	engine := newTestEngine(t)
	ref := refTime(t)

	data := engine.ComposeDashboard(nil, nil, 0, ref)

	t.Run("โครงสร้างครบแม้ไม่มีข้อมูล", func(t *testing.T) {
		assert.Len(t, data.Timeline, 31) // 30 วันเต็ม + วันเปิด window ที่เป็นวันบางส่วน
		assert.NotNil(t, data.Stores)
		assert.NotNil(t, data.Employees)
		assert.NotNil(t, data.Products)
		assert.Empty(t, data.Stores)
	})

	t.Run("KPI เป็นศูนย์ทั้งหมด growth เป็นศูนย์", func(t *testing.T) {
		assert.Zero(t, data.KPIs.Revenue.Current)
		assert.Zero(t, data.KPIs.Revenue.GrowthPercent)
		assert.Zero(t, data.KPIs.AvgTicket.Current)
	})

	t.Run("สหสัมพันธ์ศูนย์จัดเป็น weak และออก info alert", func(t *testing.T) {
		assert.Equal(t, 0.0, data.Correlation.Value)
		assert.Equal(t, StrengthWeak, data.Correlation.Strength)
		require.Len(t, data.Alerts, 1)
		assert.Equal(t, AlertInfo, data.Alerts[0].Type)
	})

	t.Run("metadata ตรงกับรอบการคำนวณ", func(t *testing.T) {
		assert.Equal(t, 0, data.Metadata.AttendanceCount)
		assert.Equal(t, 30, data.Metadata.WindowDays)
		assert.Equal(t, "Asia/Bangkok", data.Metadata.Timezone)
		assert.NotEmpty(t, data.Metadata.GeneratedAt)
	})
}

func TestComposeDashboardConsistency(t *testing.T) {
	engine := newTestEngine(t)
	ref := refTime(t)
	day := ref.Add(-24 * time.Hour)

	attendance := []models.AttendanceRecord{
		makeAttendance(engine, day, "e1", "s1", models.StatusCheckIn),
		makeAttendance(engine, day, "e2", "s1", models.StatusCheckIn),
	}
	sales := []models.SalesRecord{
		makeSale(engine, day, "e1", "s1", "p1", 100, 1, "กล่อง"),
		makeSale(engine, day, "e2", "s1", "p2", 200, 2, "ชิ้น"),
	}

	data := engine.ComposeDashboard(attendance, sales, 3, ref)

	t.Run("ทุกส่วนเห็นข้อมูลชุดเดียวกัน", func(t *testing.T) {
		assert.Equal(t, 300.0, data.KPIs.Revenue.Current)

		var timelineRevenue float64
		for _, point := range data.Timeline {
			timelineRevenue += point.Revenue
		}
		assert.Equal(t, data.KPIs.Revenue.Current, timelineRevenue)

		var heatmapRevenue float64
		for weekday := 0; weekday < 7; weekday++ {
			for hour := 0; hour < 24; hour++ {
				heatmapRevenue += data.Heatmaps.Sales[weekday][hour]
			}
		}
		assert.Equal(t, data.KPIs.Revenue.Current, heatmapRevenue)

		require.Len(t, data.Stores, 1)
		assert.Equal(t, data.KPIs.Revenue.Current, data.Stores[0].Revenue)
	})

	t.Run("metadata นับ record และ dropped ถูกต้อง", func(t *testing.T) {
		assert.Equal(t, 2, data.Metadata.AttendanceCount)
		assert.Equal(t, 2, data.Metadata.SalesCount)
		assert.Equal(t, 3, data.Metadata.DroppedCount)
	})
}
