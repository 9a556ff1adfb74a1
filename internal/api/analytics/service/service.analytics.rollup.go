// Dimensional Rollup Engine — สรุปยอดต่อสาขา ต่อพนักงาน ต่อสินค้า ใน window ปัจจุบัน
package analyticssvc

import (
	"sort"
	"time"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/dto"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/models"
)

// groupAccum ตัวสะสมต่อกลุ่มหนึ่งกลุ่ม สร้างใหม่ทุกรอบการคำนวณ
type groupAccum struct {
	name         string
	checkIns     int
	revenue      float64
	transactions int
	employees    map[string]struct{}
	stores       map[string]struct{}
	products     map[string]struct{}
}

func newGroupAccum(name string) *groupAccum {
	return &groupAccum{
		name:      name,
		employees: make(map[string]struct{}),
		stores:    make(map[string]struct{}),
		products:  make(map[string]struct{}),
	}
}

// groupCollector เก็บตัวสะสมตาม id พร้อมจำลำดับที่พบกลุ่มครั้งแรก
// ลำดับนี้คือ tiebreak ของการจัดอันดับ — ห้าม iterate map ตรง ๆ ตอน emit
type groupCollector struct {
	accum map[string]*groupAccum
	order []*groupAccum
}

func newGroupCollector() *groupCollector {
	return &groupCollector{accum: make(map[string]*groupAccum)}
}

// get คืนตัวสะสมของ id สร้างใหม่และจดลำดับเมื่อยังไม่เคยพบ
func (c *groupCollector) get(id, name string) *groupAccum {
	g, exists := c.accum[id]
	if !exists {
		g = newGroupAccum(name)
		c.accum[id] = g
		c.order = append(c.order, g)
	}
	return g
}

// RollupStores สรุปยอดต่อสาขา เรียงยอดขายมากไปน้อย ตัดที่ topLimit
func (e *Engine) RollupStores(attendance []models.AttendanceRecord, sales []models.SalesRecord, ref time.Time) []dto.GroupAggregate {
	win := e.currentWindow(ref)
	groups := newGroupCollector()

	for _, rec := range attendance {
		if !win.contains(rec.Timestamp) || rec.Status != models.StatusCheckIn {
			continue
		}
		g := groups.get(rec.StoreID, rec.StoreName)
		g.checkIns++
		g.employees[rec.EmployeeID] = struct{}{}
	}
	for _, rec := range sales {
		if !win.contains(rec.Timestamp) {
			continue
		}
		g := groups.get(rec.StoreID, rec.StoreName)
		g.revenue += rec.Total
		g.transactions++
		g.employees[rec.EmployeeID] = struct{}{}
	}

	results := make([]dto.GroupAggregate, 0, len(groups.order))
	for _, g := range groups.order {
		results = append(results, dto.GroupAggregate{
			Name:          g.name,
			CheckIns:      g.checkIns,
			Revenue:       g.revenue,
			Transactions:  g.transactions,
			AvgTicket:     safeDiv(g.revenue, float64(g.transactions)),
			Efficiency:    safeDiv(g.revenue, float64(g.checkIns)),
			EmployeeCount: len(g.employees),
		})
	}
	return e.rankAndCap(results)
}

// RollupEmployees สรุปยอดต่อพนักงาน เรียงยอดขายมากไปน้อย ตัดที่ topLimit
func (e *Engine) RollupEmployees(attendance []models.AttendanceRecord, sales []models.SalesRecord, ref time.Time) []dto.GroupAggregate {
	win := e.currentWindow(ref)
	groups := newGroupCollector()

	for _, rec := range attendance {
		if !win.contains(rec.Timestamp) || rec.Status != models.StatusCheckIn {
			continue
		}
		g := groups.get(rec.EmployeeID, rec.EmployeeName)
		g.checkIns++
		g.stores[rec.StoreID] = struct{}{}
	}
	for _, rec := range sales {
		if !win.contains(rec.Timestamp) {
			continue
		}
		g := groups.get(rec.EmployeeID, rec.EmployeeName)
		g.revenue += rec.Total
		g.transactions++
		g.stores[rec.StoreID] = struct{}{}
		g.products[rec.ProductID] = struct{}{}
	}

	results := make([]dto.GroupAggregate, 0, len(groups.order))
	for _, g := range groups.order {
		results = append(results, dto.GroupAggregate{
			Name:         g.name,
			CheckIns:     g.checkIns,
			Revenue:      g.revenue,
			Transactions: g.transactions,
			AvgTicket:    safeDiv(g.revenue, float64(g.transactions)),
			Productivity: safeDiv(float64(g.transactions), float64(g.checkIns)),
			StoreCount:   len(g.stores),
			ProductCount: len(g.products),
		})
	}
	return e.rankAndCap(results)
}

// RollupProducts สรุปยอดต่อสินค้า เรียงยอดขายมากไปน้อย ตัดที่ topLimit
// มิติสินค้าไม่มีข้อมูลเข้างาน จึงไม่มี checkIns/efficiency
func (e *Engine) RollupProducts(sales []models.SalesRecord, ref time.Time) []dto.GroupAggregate {
	win := e.currentWindow(ref)
	groups := newGroupCollector()

	for _, rec := range sales {
		if !win.contains(rec.Timestamp) {
			continue
		}
		g := groups.get(rec.ProductID, rec.ProductName)
		g.revenue += rec.Total
		g.transactions++
		g.stores[rec.StoreID] = struct{}{}
		g.employees[rec.EmployeeID] = struct{}{}
	}

	results := make([]dto.GroupAggregate, 0, len(groups.order))
	for _, g := range groups.order {
		results = append(results, dto.GroupAggregate{
			Name:          g.name,
			Revenue:       g.revenue,
			Transactions:  g.transactions,
			AvgTicket:     safeDiv(g.revenue, float64(g.transactions)),
			StoreCount:    len(g.stores),
			EmployeeCount: len(g.employees),
		})
	}
	return e.rankAndCap(results)
}

// rankAndCap เรียงยอดขายมากไปน้อยแบบ stable แล้วตัดที่ topLimit
// ยอดเท่ากันคงลำดับที่พบกลุ่มครั้งแรกใน record — ไม่เรียงชื่อซ้ำ
func (e *Engine) rankAndCap(groups []dto.GroupAggregate) []dto.GroupAggregate {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Revenue > groups[j].Revenue
	})
	if len(groups) > e.topLimit {
		groups = groups[:e.topLimit]
	}
	return groups
}
