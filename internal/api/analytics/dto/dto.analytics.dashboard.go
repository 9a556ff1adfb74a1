// Package dto - โครงสร้าง response ของ analytics module
package dto

// KPIResult ค่า KPI หนึ่งตัวเทียบ window ปัจจุบันกับ window ก่อนหน้า
// GrowthPercent = 0 เสมอเมื่อ Previous = 0 (ไม่มีทางเป็น NaN/Inf)
type KPIResult struct {
	Current       float64   `json:"current"`
	Previous      float64   `json:"previous"`
	GrowthPercent float64   `json:"growthPercent"`
	Sparkline     []float64 `json:"sparkline"` // ค่ารายวัน 7 วันล่าสุด เรียงเก่า→ใหม่
}

// DashboardKPIs ชุด KPI หลักของ dashboard
type DashboardKPIs struct {
	Revenue         KPIResult `json:"revenue"`
	Transactions    KPIResult `json:"transactions"`
	AvgTicket       KPIResult `json:"avgTicket"`
	CheckIns        KPIResult `json:"checkIns"`
	ActiveEmployees KPIResult `json:"activeEmployees"`
}

// TimelinePoint ข้อมูลรายวันหนึ่งจุดใน timeline ของ window ปัจจุบัน
type TimelinePoint struct {
	Date            string  `json:"date"` // YYYY-MM-DD
	CheckIns        int     `json:"checkIns"`
	CheckOuts       int     `json:"checkOuts"`
	Revenue         float64 `json:"revenue"`
	Transactions    int     `json:"transactions"`
	ActiveEmployees int     `json:"activeEmployees"`
	AvgTicket       float64 `json:"avgTicket"`
}

// HeatmapSet heatmap ขนาดคงที่ 7×24 (แถว=วันในสัปดาห์ 0=อาทิตย์, คอลัมน์=ชั่วโมง)
// attendance นับจำนวน check-in, sales รวมยอดขายดิบ — ไม่เฉลี่ย ให้ฝั่งแสดงผล scale เอง
type HeatmapSet struct {
	Attendance [7][24]int     `json:"attendance"`
	Sales      [7][24]float64 `json:"sales"`
}

// GroupAggregate ยอดรวมต่อกลุ่มหนึ่งมิติ (สาขา/พนักงาน/สินค้า)
// Efficiency มีเฉพาะมิติสาขา, Productivity มีเฉพาะมิติพนักงาน
type GroupAggregate struct {
	Name          string  `json:"name"`
	CheckIns      int     `json:"checkIns"`
	Revenue       float64 `json:"revenue"`
	Transactions  int     `json:"transactions"`
	AvgTicket     float64 `json:"avgTicket"`
	Efficiency    float64 `json:"efficiency,omitempty"`    // revenue/checkIns (มิติสาขา)
	Productivity  float64 `json:"productivity,omitempty"`  // transactions/checkIns (มิติพนักงาน)
	EmployeeCount int     `json:"employeeCount,omitempty"` // จำนวนพนักงานที่ active ในกลุ่ม
	StoreCount    int     `json:"storeCount,omitempty"`    // จำนวนสาขาที่เกี่ยวข้อง
	ProductCount  int     `json:"productCount,omitempty"`  // จำนวนสินค้าที่ขาย (มิติพนักงาน)
}

// CorrelationResult ค่าสหสัมพันธ์ระหว่างการเข้างานกับยอดขายรายวัน
type CorrelationResult struct {
	Value    float64 `json:"value"`
	Strength string  `json:"strength"` // strong | moderate | weak
}

// Alert การแจ้งเตือนจากการเทียบ KPI กับ threshold
type Alert struct {
	Type    string `json:"type"` // critical | warning | info
	Message string `json:"message"`
}

// DashboardMetadata ข้อมูลประกอบของการคำนวณครั้งนี้
type DashboardMetadata struct {
	AttendanceCount int    `json:"attendanceCount"` // จำนวน record หลัง normalize
	SalesCount      int    `json:"salesCount"`
	DroppedCount    int    `json:"droppedCount"` // จำนวน event ที่ถูกทิ้งตอน normalize
	WindowDays      int    `json:"windowDays"`
	GeneratedAt     string `json:"generatedAt"`
	Timezone        string `json:"timezone"`
}

// DashboardData ผลลัพธ์รวมของ GET /analytics/dashboard
type DashboardData struct {
	KPIs        DashboardKPIs     `json:"kpis"`
	Timeline    []TimelinePoint   `json:"timeline"`
	Heatmaps    HeatmapSet        `json:"heatmaps"`
	Stores      []GroupAggregate  `json:"stores"`
	Employees   []GroupAggregate  `json:"employees"`
	Products    []GroupAggregate  `json:"products"`
	Correlation CorrelationResult `json:"correlation"`
	Alerts      []Alert           `json:"alerts"`
	Metadata    DashboardMetadata `json:"metadata"`
}
