package analyticssvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/models"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/common"
)

// newTestEngine สร้าง engine ด้วยคอนฟิกมาตรฐานของ test ทั้งไฟล์
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(Settings{
		Timezone:   "Asia/Bangkok",
		WindowDays: 30,
		TopLimit:   10,
		Thresholds: DefaultThresholds(),
	})
	require.NoError(t, err)
	return engine
}

// makeAttendance สร้าง AttendanceRecord สำหรับ test โดย stamp เวลาแบบเดียวกับ normalizer
func makeAttendance(e *Engine, ts time.Time, employeeID, storeID, status string) models.AttendanceRecord {
	parts := e.resolveParts(ts)
	return models.AttendanceRecord{
		Timestamp:    ts,
		DayKey:       e.dayKey(ts),
		MonthKey:     e.monthKey(ts),
		Year:         parts.Year,
		Month:        parts.Month,
		StoreID:      storeID,
		StoreName:    "สาขา " + storeID,
		EmployeeID:   employeeID,
		EmployeeName: "พนักงาน " + employeeID,
		Status:       status,
		Hour:         parts.Hour,
		Weekday:      parts.Weekday,
	}
}

// makeSale สร้าง SalesRecord สำหรับ test
func makeSale(e *Engine, ts time.Time, employeeID, storeID, productID string, total, quantity float64, unit string) models.SalesRecord {
	parts := e.resolveParts(ts)
	return models.SalesRecord{
		Timestamp:    ts,
		DayKey:       e.dayKey(ts),
		MonthKey:     e.monthKey(ts),
		Year:         parts.Year,
		Month:        parts.Month,
		StoreID:      storeID,
		StoreName:    "สาขา " + storeID,
		EmployeeID:   employeeID,
		EmployeeName: "พนักงาน " + employeeID,
		ProductID:    productID,
		ProductCode:  "P-" + productID,
		ProductName:  "สินค้า " + productID,
		UnitLabel:    unit,
		Total:        total,
		Quantity:     quantity,
		Hour:         parts.Hour,
		Weekday:      parts.Weekday,
	}
}

func TestNewEngine(t *testing.T) {
	t.Run("timezone ไม่ถูกต้องต้อง error", func(t *testing.T) {
		_, err := NewEngine(Settings{Timezone: "Mars/Olympus", WindowDays: 30})
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidTimezone)
	})

	t.Run("window ศูนย์หรือติดลบต้อง error", func(t *testing.T) {
		_, err := NewEngine(Settings{Timezone: "Asia/Bangkok", WindowDays: 0})
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidWindow)

		_, err = NewEngine(Settings{Timezone: "Asia/Bangkok", WindowDays: -7})
		assert.ErrorIs(t, err, common.ErrInvalidWindow)
	})

	t.Run("topLimit ไม่เป็นบวกต้อง error ไม่ default เงียบ", func(t *testing.T) {
		_, err := NewEngine(Settings{Timezone: "Asia/Bangkok", WindowDays: 30})
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidTopLimit)

		_, err = NewEngine(Settings{Timezone: "Asia/Bangkok", WindowDays: 30, TopLimit: -1})
		assert.ErrorIs(t, err, common.ErrInvalidTopLimit)
	})

	t.Run("คอนฟิกครบถูกต้องสร้างได้", func(t *testing.T) {
		engine, err := NewEngine(Settings{Timezone: "Asia/Bangkok", WindowDays: 30, TopLimit: 10})
		require.NoError(t, err)
		assert.Equal(t, 10, engine.topLimit)
	})
}

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 2.5, safeDiv(5, 2))
	assert.Equal(t, 0.0, safeDiv(5, 0))
	assert.Equal(t, 0.0, safeDiv(0, 0))
	assert.Equal(t, -2.0, safeDiv(-4, 2))
}

func TestSafeGrowth(t *testing.T) {
	t.Run("previous เป็นศูนย์ต้องได้ 0 ไม่ใช่ Inf", func(t *testing.T) {
		assert.Equal(t, 0.0, safeGrowth(100, 0))
	})

	t.Run("previous ติดลบต้องได้ 0", func(t *testing.T) {
		assert.Equal(t, 0.0, safeGrowth(100, -50))
	})

	t.Run("คำนวณเปอร์เซ็นต์ปกติ", func(t *testing.T) {
		assert.InDelta(t, 50.0, safeGrowth(150, 100), 1e-9)
		assert.InDelta(t, -25.0, safeGrowth(75, 100), 1e-9)
		assert.InDelta(t, 0.0, safeGrowth(100, 100), 1e-9)
	})
}
