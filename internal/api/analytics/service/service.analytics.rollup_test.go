package analyticssvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/models"
)

func TestRollupStores(t *testing.T) {
	engine := newTestEngine(t)
	ref := refTime(t)
	day := ref.Add(-24 * time.Hour)

	attendance := []models.AttendanceRecord{
		makeAttendance(engine, day, "e1", "A", models.StatusCheckIn),
		makeAttendance(engine, day, "e2", "A", models.StatusCheckIn),
		makeAttendance(engine, day, "e3", "B", models.StatusCheckIn),
	}
	sales := []models.SalesRecord{
		makeSale(engine, day, "e1", "A", "p1", 200, 1, "กล่อง"),
		makeSale(engine, day, "e2", "A", "p1", 100, 1, "กล่อง"),
		makeSale(engine, day, "e3", "B", "p1", 100, 1, "กล่อง"),
	}

	stores := engine.RollupStores(attendance, sales, ref)
	require.Len(t, stores, 2)

	t.Run("เรียงยอดขายมากไปน้อย", func(t *testing.T) {
		assert.Equal(t, "สาขา A", stores[0].Name)
		assert.Equal(t, 300.0, stores[0].Revenue)
		assert.Equal(t, "สาขา B", stores[1].Name)
	})

	t.Run("ค่าประกอบของสาขาครบ", func(t *testing.T) {
		a := stores[0]
		assert.Equal(t, 2, a.CheckIns)
		assert.Equal(t, 2, a.Transactions)
		assert.Equal(t, 150.0, a.AvgTicket)
		assert.Equal(t, 150.0, a.Efficiency) // 300 / 2 check-ins
		assert.Equal(t, 2, a.EmployeeCount)
	})

	t.Run("สาขาที่มีแต่การเข้างานไม่มียอดขาย efficiency เป็นศูนย์ไม่ใช่ NaN", func(t *testing.T) {
		onlyAtt := []models.AttendanceRecord{
			makeAttendance(engine, day, "e9", "C", models.StatusCheckIn),
		}
		result := engine.RollupStores(onlyAtt, nil, ref)
		require.Len(t, result, 1)
		assert.Equal(t, 0.0, result[0].Efficiency)
		assert.Equal(t, 0.0, result[0].AvgTicket)
	})
}

func TestRollupEmployees(t *testing.T) {
	engine := newTestEngine(t)
	ref := refTime(t)
	day := ref.Add(-24 * time.Hour)

	attendance := []models.AttendanceRecord{
		makeAttendance(engine, day, "e1", "A", models.StatusCheckIn),
		makeAttendance(engine, day.Add(-24*time.Hour), "e1", "B", models.StatusCheckIn),
	}
	sales := []models.SalesRecord{
		makeSale(engine, day, "e1", "A", "p1", 100, 1, "กล่อง"),
		makeSale(engine, day, "e1", "A", "p2", 80, 1, "ชิ้น"),
		makeSale(engine, day, "e1", "A", "p1", 60, 1, "กล่อง"),
	}

	employees := engine.RollupEmployees(attendance, sales, ref)
	require.Len(t, employees, 1)

	e1 := employees[0]
	assert.Equal(t, "พนักงาน e1", e1.Name)
	assert.Equal(t, 2, e1.CheckIns)
	assert.Equal(t, 240.0, e1.Revenue)
	assert.Equal(t, 3, e1.Transactions)
	assert.Equal(t, 1.5, e1.Productivity) // 3 รายการ / 2 check-ins
	assert.Equal(t, 2, e1.StoreCount)
	assert.Equal(t, 2, e1.ProductCount)
}

func TestRankAndCap(t *testing.T) {
	ref := time.Now()

	t.Run("ตัดที่ topLimit", func(t *testing.T) {
		engine, err := NewEngine(Settings{Timezone: "Asia/Bangkok", WindowDays: 30, TopLimit: 2})
		require.NoError(t, err)

		day := ref.Add(-24 * time.Hour)
		sales := []models.SalesRecord{
			makeSale(engine, day, "e1", "A", "p1", 300, 1, "กล่อง"),
			makeSale(engine, day, "e1", "B", "p1", 200, 1, "กล่อง"),
			makeSale(engine, day, "e1", "C", "p1", 100, 1, "กล่อง"),
		}
		stores := engine.RollupStores(nil, sales, ref)
		require.Len(t, stores, 2)
		assert.Equal(t, "สาขา A", stores[0].Name)
		assert.Equal(t, "สาขา B", stores[1].Name)
	})

	t.Run("ยอดเท่ากันคงลำดับที่พบก่อนใน record", func(t *testing.T) {
		engine := newTestEngine(t)
		day := ref.Add(-24 * time.Hour)
		// สาขา Z มาก่อนสาขา A ใน record ยอดเท่ากัน — Z ต้องนำ
		sales := []models.SalesRecord{
			makeSale(engine, day, "e1", "Z", "p1", 100, 1, "กล่อง"),
			makeSale(engine, day, "e1", "A", "p1", 100, 1, "กล่อง"),
		}
		stores := engine.RollupStores(nil, sales, ref)
		require.Len(t, stores, 2)
		assert.Equal(t, "สาขา Z", stores[0].Name)
		assert.Equal(t, "สาขา A", stores[1].Name)
	})

	t.Run("ยอดเท่ากันหลายกลุ่มลำดับนิ่งทุกรอบ", func(t *testing.T) {
		engine := newTestEngine(t)
		day := ref.Add(-24 * time.Hour)
		sales := []models.SalesRecord{
			makeSale(engine, day, "e1", "C", "p1", 100, 1, "กล่อง"),
			makeSale(engine, day, "e1", "B", "p1", 200, 1, "กล่อง"),
			makeSale(engine, day, "e1", "A", "p1", 100, 1, "กล่อง"),
		}
		for round := 0; round < 10; round++ {
			stores := engine.RollupStores(nil, sales, ref)
			require.Len(t, stores, 3)
			assert.Equal(t, "สาขา B", stores[0].Name)
			assert.Equal(t, "สาขา C", stores[1].Name)
			assert.Equal(t, "สาขา A", stores[2].Name)
		}
	})
}

func TestRollupProducts(t *testing.T) {
	engine := newTestEngine(t)
	ref := refTime(t)
	day := ref.Add(-24 * time.Hour)

	sales := []models.SalesRecord{
		makeSale(engine, day, "e1", "A", "p1", 100, 1, "กล่อง"),
		makeSale(engine, day, "e2", "B", "p1", 200, 2, "กล่อง"),
		makeSale(engine, day, "e1", "A", "p2", 50, 1, "ชิ้น"),
	}

	products := engine.RollupProducts(sales, ref)
	require.Len(t, products, 2)

	p1 := products[0]
	assert.Equal(t, "สินค้า p1", p1.Name)
	assert.Equal(t, 300.0, p1.Revenue)
	assert.Equal(t, 2, p1.Transactions)
	assert.Equal(t, 150.0, p1.AvgTicket)
	assert.Equal(t, 2, p1.StoreCount)
	assert.Equal(t, 2, p1.EmployeeCount)
}
