package analyticssvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/models"
)

func TestNormalizeTimestampResolution(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("meta.timestamp มาก่อน field timestamp ของ event", func(t *testing.T) {
		events := []models.RawEvent{{
			Scope:     models.ScopeAttendance,
			Timestamp: "2025-01-01T00:00:00Z",
			Meta:      map[string]interface{}{"timestamp": "2025-02-02T10:00:00Z"},
		}}
		result := engine.Normalize(events, models.NewMasterData())
		require.Len(t, result.Attendance, 1)
		assert.Equal(t, 2, result.Attendance[0].Month)
	})

	t.Run("meta.timestamp เสียให้ fallback เป็น field timestamp", func(t *testing.T) {
		events := []models.RawEvent{{
			Scope:     models.ScopeAttendance,
			Timestamp: "2025-03-15T08:00:00Z",
			Meta:      map[string]interface{}{"timestamp": "ไม่ใช่เวลา"},
		}}
		result := engine.Normalize(events, models.NewMasterData())
		require.Len(t, result.Attendance, 1)
		assert.Equal(t, 3, result.Attendance[0].Month)
		assert.Equal(t, 0, result.Dropped)
	})

	t.Run("parse ไม่ได้ทั้งคู่ต้องทิ้ง event", func(t *testing.T) {
		events := []models.RawEvent{{
			Scope:     models.ScopeAttendance,
			Timestamp: "เมื่อวานตอนเย็น",
			Meta:      map[string]interface{}{},
		}}
		result := engine.Normalize(events, models.NewMasterData())
		assert.Empty(t, result.Attendance)
		assert.Equal(t, 1, result.Dropped)
	})

	t.Run("unix millis ใช้ได้", func(t *testing.T) {
		ts := time.Date(2025, 4, 10, 9, 30, 0, 0, time.UTC)
		events := []models.RawEvent{{
			Scope:     models.ScopeAttendance,
			Timestamp: "",
			Meta:      map[string]interface{}{"timestamp": float64(ts.UnixMilli())},
		}}
		result := engine.Normalize(events, models.NewMasterData())
		require.Len(t, result.Attendance, 1)
		assert.Equal(t, 4, result.Attendance[0].Month)
	})
}

func TestNormalizeZonedBucketing(t *testing.T) {
	engine := newTestEngine(t)

	// 18:30 UTC = 01:30 ของวันถัดไปที่กรุงเทพ — ต้องตกวันอังคารที่ 1 ก.ค.
	events := []models.RawEvent{{
		Scope:     models.ScopeAttendance,
		Timestamp: "2025-06-30T18:30:00Z",
		Meta:      map[string]interface{}{"status": "check-in"},
	}}
	result := engine.Normalize(events, models.NewMasterData())
	require.Len(t, result.Attendance, 1)

	rec := result.Attendance[0]
	assert.Equal(t, "2025-07-01", rec.DayKey)
	assert.Equal(t, "2025-07", rec.MonthKey)
	assert.Equal(t, 7, rec.Month)
	assert.Equal(t, 1, rec.Hour)
	assert.Equal(t, 2, rec.Weekday) // วันอังคาร
}

func TestNormalizeStatus(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		name   string
		status interface{}
		want   string
	}{
		{"check-in ปกติ", "check-in", models.StatusCheckIn},
		{"ตัวพิมพ์ใหญ่", "CHECK-IN", models.StatusCheckIn},
		{"check-out ตัวพิมพ์ผสม", "Check-Out", models.StatusCheckOut},
		{"สถานะแปลกปลอมถือเป็น check-in", "break", models.StatusCheckIn},
		{"ไม่มีสถานะถือเป็น check-in", nil, models.StatusCheckIn},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := map[string]interface{}{}
			if tc.status != nil {
				meta["status"] = tc.status
			}
			events := []models.RawEvent{{
				Scope:     models.ScopeAttendance,
				Timestamp: "2025-05-01T10:00:00Z",
				Meta:      meta,
			}}
			result := engine.Normalize(events, models.NewMasterData())
			require.Len(t, result.Attendance, 1)
			assert.Equal(t, tc.want, result.Attendance[0].Status)
		})
	}
}

func TestNormalizeNameResolution(t *testing.T) {
	engine := newTestEngine(t)

	md := models.NewMasterData()
	md.Stores["s1"] = "สาขาสีลม"
	md.Employees["e1"] = "สมชาย"
	md.Products["p1"] = models.ProductIdentity{Code: "SKU-001", Name: "นมกล่อง"}

	t.Run("ใช้ชื่อจาก master data ตาม id", func(t *testing.T) {
		events := []models.RawEvent{{
			Scope:     models.ScopeSales,
			Timestamp: "2025-05-01T10:00:00Z",
			Meta: map[string]interface{}{
				"storeId":    "s1",
				"employeeId": "e1",
				"productId":  "p1",
				"total":      100.0,
				"quantity":   1.0,
				"unit":       "กล่อง",
			},
		}}
		result := engine.Normalize(events, md)
		require.Len(t, result.Sales, 1)

		rec := result.Sales[0]
		assert.Equal(t, "สาขาสีลม", rec.StoreName)
		assert.Equal(t, "สมชาย", rec.EmployeeName)
		assert.Equal(t, "SKU-001", rec.ProductCode)
		assert.Equal(t, "นมกล่อง", rec.ProductName)
	})

	t.Run("ไม่พบใน master data ใช้ชื่อจาก payload", func(t *testing.T) {
		events := []models.RawEvent{{
			Scope:     models.ScopeAttendance,
			Timestamp: "2025-05-01T10:00:00Z",
			Meta: map[string]interface{}{
				"storeId":   "s99",
				"storeName": "สาขาชั่วคราว",
			},
		}}
		result := engine.Normalize(events, md)
		require.Len(t, result.Attendance, 1)
		assert.Equal(t, "สาขาชั่วคราว", result.Attendance[0].StoreName)
	})

	t.Run("ไม่มีทั้งคู่ต้องเติมไม่ระบุ", func(t *testing.T) {
		events := []models.RawEvent{{
			Scope:     models.ScopeAttendance,
			Timestamp: "2025-05-01T10:00:00Z",
			Meta:      map[string]interface{}{},
		}}
		result := engine.Normalize(events, md)
		require.Len(t, result.Attendance, 1)
		assert.Equal(t, models.ValueUnspecified, result.Attendance[0].StoreName)
		assert.Equal(t, models.ValueUnspecified, result.Attendance[0].EmployeeName)
	})
}

func TestNormalizeSalesNumberGuards(t *testing.T) {
	engine := newTestEngine(t)

	base := func(meta map[string]interface{}) []models.RawEvent {
		return []models.RawEvent{{
			Scope:     models.ScopeSales,
			Timestamp: "2025-05-01T10:00:00Z",
			Meta:      meta,
		}}
	}

	t.Run("total ไม่ใช่ตัวเลขต้องทิ้งทั้งแถว", func(t *testing.T) {
		result := engine.Normalize(base(map[string]interface{}{
			"total": "ร้อยบาท", "quantity": 1.0,
		}), models.NewMasterData())
		assert.Empty(t, result.Sales)
		assert.Equal(t, 1, result.Dropped)
	})

	t.Run("quantity หายต้องทิ้งทั้งแถว", func(t *testing.T) {
		result := engine.Normalize(base(map[string]interface{}{
			"total": 100.0,
		}), models.NewMasterData())
		assert.Empty(t, result.Sales)
		assert.Equal(t, 1, result.Dropped)
	})

	t.Run("ตัวเลขเป็นสตริงใช้ได้", func(t *testing.T) {
		result := engine.Normalize(base(map[string]interface{}{
			"total": "150.50", "quantity": "3",
		}), models.NewMasterData())
		require.Len(t, result.Sales, 1)
		assert.Equal(t, 150.50, result.Sales[0].Total)
		assert.Equal(t, 3.0, result.Sales[0].Quantity)
	})
}

func TestNormalizeUnknownScope(t *testing.T) {
	engine := newTestEngine(t)

	events := []models.RawEvent{{
		Scope:     "inventory",
		Timestamp: "2025-05-01T10:00:00Z",
		Meta:      map[string]interface{}{},
	}}
	result := engine.Normalize(events, models.NewMasterData())
	assert.Empty(t, result.Attendance)
	assert.Empty(t, result.Sales)
	assert.Equal(t, 1, result.Dropped)
}
