// Windowed KPI Calculator — เทียบ window ปัจจุบันกับ window ก่อนหน้า ความยาวเท่ากัน
package analyticssvc

import (
	"time"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/dto"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/models"
)

// sparklineDays จำนวนวันล่าสุดที่ใช้วาด sparkline
const sparklineDays = 7

// windowBounds ช่วงเวลาแบบ half-open (Start, End]
// ขอบแบบนี้ทำให้สอง window ต่อกันพอดีไม่มีวินาทีไหนนับซ้ำหรือหลุด
type windowBounds struct {
	Start time.Time
	End   time.Time
}

// contains ตรวจว่า instant อยู่ใน window หรือไม่
func (w windowBounds) contains(t time.Time) bool {
	return t.After(w.Start) && !t.After(w.End)
}

// currentWindow คืนช่วง (ref-windowDays, ref]
func (e *Engine) currentWindow(ref time.Time) windowBounds {
	return windowBounds{Start: ref.AddDate(0, 0, -e.windowDays), End: ref}
}

// previousWindow คืนช่วง (ref-2*windowDays, ref-windowDays]
func (e *Engine) previousWindow(ref time.Time) windowBounds {
	return windowBounds{Start: ref.AddDate(0, 0, -2*e.windowDays), End: ref.AddDate(0, 0, -e.windowDays)}
}

// BuildTimeline สร้างอนุกรมรายวันของ window ปัจจุบัน เรียงวันที่จากเก่าไปใหม่
// ครอบทุกวันปฏิทินที่ window แตะ รวมวันเปิดที่เป็นวันบางส่วน — ทุก record ที่
// KPI นับต้องมีวันรองรับใน timeline เสมอ ผลรวมสองฝั่งจึงตรงกัน
// วันไม่มีข้อมูลยังมี entry ค่าศูนย์ กราฟฝั่งหน้าบ้านไม่ต้องเดาว่าวันไหนโหว่
func (e *Engine) BuildTimeline(attendance []models.AttendanceRecord, sales []models.SalesRecord, ref time.Time) []dto.TimelinePoint {
	win := e.currentWindow(ref)

	type dayAccum struct {
		checkIns     int
		checkOuts    int
		revenue      float64
		transactions int
		employees    map[string]struct{}
	}

	startLocal := win.Start.In(e.loc)
	firstDay := time.Date(startLocal.Year(), startLocal.Month(), startLocal.Day(), 0, 0, 0, 0, e.loc)
	endLocal := win.End.In(e.loc)
	lastDay := time.Date(endLocal.Year(), endLocal.Month(), endLocal.Day(), 0, 0, 0, 0, e.loc)

	days := make([]string, 0, e.windowDays+1)
	accum := make(map[string]*dayAccum, e.windowDays+1)
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		days = append(days, key)
		accum[key] = &dayAccum{employees: make(map[string]struct{})}
	}

	for _, rec := range attendance {
		if !win.contains(rec.Timestamp) {
			continue
		}
		day, exists := accum[rec.DayKey]
		if !exists {
			continue
		}
		if rec.Status == models.StatusCheckOut {
			day.checkOuts++
			continue
		}
		day.checkIns++
		day.employees[rec.EmployeeID] = struct{}{}
	}

	for _, rec := range sales {
		if !win.contains(rec.Timestamp) {
			continue
		}
		day, exists := accum[rec.DayKey]
		if !exists {
			continue
		}
		day.revenue += rec.Total
		day.transactions++
	}

	timeline := make([]dto.TimelinePoint, 0, len(days))
	for _, key := range days {
		day := accum[key]
		timeline = append(timeline, dto.TimelinePoint{
			Date:            key,
			CheckIns:        day.checkIns,
			CheckOuts:       day.checkOuts,
			Revenue:         day.revenue,
			Transactions:    day.transactions,
			ActiveEmployees: len(day.employees),
			AvgTicket:       safeDiv(day.revenue, float64(day.transactions)),
		})
	}
	return timeline
}

// windowTotals ยอดรวมของ window หนึ่งช่วง ใช้ประกอบ KPI
type windowTotals struct {
	Revenue         float64
	Transactions    float64
	CheckIns        float64
	ActiveEmployees float64
}

// collectWindowTotals รวมยอดของ record ที่ตกใน window
func collectWindowTotals(attendance []models.AttendanceRecord, sales []models.SalesRecord, win windowBounds) windowTotals {
	var totals windowTotals
	employees := make(map[string]struct{})

	for _, rec := range attendance {
		if !win.contains(rec.Timestamp) || rec.Status != models.StatusCheckIn {
			continue
		}
		totals.CheckIns++
		employees[rec.EmployeeID] = struct{}{}
	}
	for _, rec := range sales {
		if !win.contains(rec.Timestamp) {
			continue
		}
		totals.Revenue += rec.Total
		totals.Transactions++
	}

	totals.ActiveEmployees = float64(len(employees))
	return totals
}

// ComputeKPIs คำนวณ KPI ห้าตัวของ dashboard
// timeline ต้องเป็นผลจาก BuildTimeline ด้วย ref เดียวกัน — sparkline ดึงจาก 7 วันท้ายของมัน
func (e *Engine) ComputeKPIs(attendance []models.AttendanceRecord, sales []models.SalesRecord, timeline []dto.TimelinePoint, ref time.Time) dto.DashboardKPIs {
	cur := collectWindowTotals(attendance, sales, e.currentWindow(ref))
	prev := collectWindowTotals(attendance, sales, e.previousWindow(ref))

	curAvgTicket := safeDiv(cur.Revenue, cur.Transactions)
	prevAvgTicket := safeDiv(prev.Revenue, prev.Transactions)

	tail := timeline
	if len(tail) > sparklineDays {
		tail = tail[len(tail)-sparklineDays:]
	}
	revSpark := make([]float64, 0, len(tail))
	txSpark := make([]float64, 0, len(tail))
	ticketSpark := make([]float64, 0, len(tail))
	checkInSpark := make([]float64, 0, len(tail))
	activeSpark := make([]float64, 0, len(tail))
	for _, point := range tail {
		revSpark = append(revSpark, point.Revenue)
		txSpark = append(txSpark, float64(point.Transactions))
		ticketSpark = append(ticketSpark, point.AvgTicket)
		checkInSpark = append(checkInSpark, float64(point.CheckIns))
		activeSpark = append(activeSpark, float64(point.ActiveEmployees))
	}

	return dto.DashboardKPIs{
		Revenue: dto.KPIResult{
			Current:       cur.Revenue,
			Previous:      prev.Revenue,
			GrowthPercent: safeGrowth(cur.Revenue, prev.Revenue),
			Sparkline:     revSpark,
		},
		Transactions: dto.KPIResult{
			Current:       cur.Transactions,
			Previous:      prev.Transactions,
			GrowthPercent: safeGrowth(cur.Transactions, prev.Transactions),
			Sparkline:     txSpark,
		},
		AvgTicket: dto.KPIResult{
			Current:       curAvgTicket,
			Previous:      prevAvgTicket,
			GrowthPercent: safeGrowth(curAvgTicket, prevAvgTicket),
			Sparkline:     ticketSpark,
		},
		CheckIns: dto.KPIResult{
			Current:       cur.CheckIns,
			Previous:      prev.CheckIns,
			GrowthPercent: safeGrowth(cur.CheckIns, prev.CheckIns),
			Sparkline:     checkInSpark,
		},
		ActiveEmployees: dto.KPIResult{
			Current:       cur.ActiveEmployees,
			Previous:      prev.ActiveEmployees,
			GrowthPercent: safeGrowth(cur.ActiveEmployees, prev.ActiveEmployees),
			Sparkline:     activeSpark,
		},
	}
}
