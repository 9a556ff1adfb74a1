// Event Normalizer + ตัวแปลงเวลาเข้าโซน — จุดเดียวที่ดูดซับ payload เสีย
// record ที่ parse ไม่ผ่าน (timestamp เสีย, ตัวเลขไม่ finite) ถูกทิ้งที่นี่ ไม่มีทาง fatal
package analyticssvc

import (
	"strings"
	"time"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/models"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/logger"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/utility"
)

// timeParts ส่วนประกอบปฏิทินของ instant หนึ่งจุดใน timezone ที่คอนฟิก
type timeParts struct {
	Year    int
	Month   int // 1-12
	Day     int
	Hour    int // 0-23
	Minute  int
	Second  int
	Weekday int // 0=อาทิตย์ ... 6=เสาร์
}

// resolveParts แตก instant เป็นส่วนปฏิทินใน timezone ของ engine
// deterministic และไม่มี side effect — ทุก component ใช้ตัวนี้ bucket เวลาให้ตรงกัน
// ไม่ว่าต้นทางเก็บเวลาเป็นโซนไหน
func (e *Engine) resolveParts(t time.Time) timeParts {
	local := t.In(e.loc)
	return timeParts{
		Year:    local.Year(),
		Month:   int(local.Month()),
		Day:     local.Day(),
		Hour:    local.Hour(),
		Minute:  local.Minute(),
		Second:  local.Second(),
		Weekday: int(local.Weekday()),
	}
}

// dayKey คืน YYYY-MM-DD ของ instant ใน timezone ของ engine
func (e *Engine) dayKey(t time.Time) string {
	return t.In(e.loc).Format("2006-01-02")
}

// monthKey คืน YYYY-MM ของ instant ใน timezone ของ engine
func (e *Engine) monthKey(t time.Time) string {
	return t.In(e.loc).Format("2006-01")
}

// NormalizeResult ผลของการ normalize หนึ่งรอบ
type NormalizeResult struct {
	Attendance []models.AttendanceRecord
	Sales      []models.SalesRecord
	Dropped    int // จำนวน event ที่ถูกทิ้ง (timestamp เสีย, ตัวเลขเสีย, scope ไม่รู้จัก)
}

// Normalize แปลง event ดิบเป็น record สองชนิดมาตรฐาน
// กติกา: timestamp ใช้ meta.timestamp ก่อน ไม่มีค่อย fallback เป็น field timestamp ของ event
// parse ไม่ได้ทั้งคู่ = ทิ้ง event นั้น, field สตริงที่หาย = เติม "ไม่ระบุ",
// sales ที่ total/quantity ไม่ finite = ทิ้งทั้งแถว (ห้ามเติม 0 เพราะจะทำให้ผลรวมเพี้ยนแบบเงียบ ๆ)
func (e *Engine) Normalize(events []models.RawEvent, md models.MasterData) NormalizeResult {
	result := NormalizeResult{
		Attendance: []models.AttendanceRecord{},
		Sales:      []models.SalesRecord{},
	}

	for i := range events {
		ev := &events[i]

		ts, ok := e.resolveTimestamp(ev)
		if !ok {
			result.Dropped++
			continue
		}

		switch ev.Scope {
		case models.ScopeAttendance:
			result.Attendance = append(result.Attendance, e.normalizeAttendance(ev, ts, md))
		case models.ScopeSales:
			rec, ok := e.normalizeSales(ev, ts, md)
			if !ok {
				result.Dropped++
				continue
			}
			result.Sales = append(result.Sales, rec)
		default:
			result.Dropped++
		}
	}

	if result.Dropped > 0 {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"total":   len(events),
			"dropped": result.Dropped,
		}).Debug("normalize: มี event ที่ parse ไม่ผ่านถูกทิ้ง")
	}

	return result
}

// resolveTimestamp หา instant ของ event — meta.timestamp มาก่อน field timestamp
func (e *Engine) resolveTimestamp(ev *models.RawEvent) (time.Time, bool) {
	if raw, exists := ev.Meta["timestamp"]; exists {
		if ts, ok := utility.ParseFlexibleTime(raw); ok {
			return ts, true
		}
	}
	return utility.ParseFlexibleTime(ev.Timestamp)
}

// normalizeAttendance สร้าง AttendanceRecord จาก event เข้างาน
// สถานะอื่นใดที่ไม่ใช่ "check-out" ตรงตัว ถูก map เป็น "check-in" ทั้งหมด
func (e *Engine) normalizeAttendance(ev *models.RawEvent, ts time.Time, md models.MasterData) models.AttendanceRecord {
	parts := e.resolveParts(ts)

	status := strings.ToLower(strings.TrimSpace(metaString(ev.Meta, "status")))
	if status != models.StatusCheckOut {
		status = models.StatusCheckIn
	}

	storeID := metaString(ev.Meta, "storeId")
	employeeID := metaString(ev.Meta, "employeeId")

	return models.AttendanceRecord{
		Timestamp:    ts,
		DayKey:       e.dayKey(ts),
		MonthKey:     e.monthKey(ts),
		Year:         parts.Year,
		Month:        parts.Month,
		StoreID:      storeID,
		StoreName:    resolveName(md.Stores, storeID, metaString(ev.Meta, "storeName")),
		EmployeeID:   employeeID,
		EmployeeName: resolveName(md.Employees, employeeID, metaString(ev.Meta, "employeeName")),
		Status:       status,
		Hour:         parts.Hour,
		Weekday:      parts.Weekday,
	}
}

// normalizeSales สร้าง SalesRecord จาก event ขาย
// คืน false เมื่อ total หรือ quantity ไม่ใช่ตัวเลข finite — สัญญากับ downstream คือ
// ไม่มี NaN/Inf ข้ามชั้นนี้ไปได้
func (e *Engine) normalizeSales(ev *models.RawEvent, ts time.Time, md models.MasterData) (models.SalesRecord, bool) {
	total, ok := utility.AnyToFloat64(ev.Meta["total"])
	if !ok {
		return models.SalesRecord{}, false
	}
	quantity, ok := utility.AnyToFloat64(ev.Meta["quantity"])
	if !ok {
		return models.SalesRecord{}, false
	}

	parts := e.resolveParts(ts)

	storeID := metaString(ev.Meta, "storeId")
	employeeID := metaString(ev.Meta, "employeeId")
	productID := metaString(ev.Meta, "productId")

	productCode := metaString(ev.Meta, "productCode")
	productName := metaString(ev.Meta, "productName")
	if identity, exists := md.Products[productID]; exists {
		if identity.Code != "" {
			productCode = identity.Code
		}
		if identity.Name != "" {
			productName = identity.Name
		}
	}

	return models.SalesRecord{
		Timestamp:    ts,
		DayKey:       e.dayKey(ts),
		MonthKey:     e.monthKey(ts),
		Year:         parts.Year,
		Month:        parts.Month,
		StoreID:      storeID,
		StoreName:    resolveName(md.Stores, storeID, metaString(ev.Meta, "storeName")),
		EmployeeID:   employeeID,
		EmployeeName: resolveName(md.Employees, employeeID, metaString(ev.Meta, "employeeName")),
		ProductID:    productID,
		ProductCode:  orUnspecified(productCode),
		ProductName:  orUnspecified(productName),
		UnitLabel:    metaString(ev.Meta, "unit"),
		Total:        total,
		Quantity:     quantity,
		Hour:         parts.Hour,
		Weekday:      parts.Weekday,
	}, true
}

// metaString อ่านค่าสตริงจาก meta แบบทนชนิด คืน "" เมื่อไม่มีหรือแปลงไม่ได้
func metaString(meta map[string]interface{}, key string) string {
	v, exists := meta[key]
	if !exists {
		return ""
	}
	s, ok := utility.AnyToString(v)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// resolveName หาชื่อจาก master data ตาม id, fallback เป็นชื่อใน payload, สุดท้ายเป็น "ไม่ระบุ"
func resolveName(table map[string]string, id, fallback string) string {
	if name, exists := table[id]; exists && name != "" {
		return name
	}
	return orUnspecified(fallback)
}

// orUnspecified เติม "ไม่ระบุ" เมื่อสตริงว่าง
func orUnspecified(s string) string {
	if s == "" {
		return models.ValueUnspecified
	}
	return s
}
