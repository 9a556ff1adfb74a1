package dto

// SalesComparisonQuery เงื่อนไขของรายงานเปรียบเทียบยอดขายรายเดือน
// month_range ตรวจว่า StartMonth <= EndMonth (custom validator)
type SalesComparisonQuery struct {
	EmployeeID string `json:"employeeId" validate:"required,no_xss"`
	Year       int    `json:"year" validate:"required,min=2000,max=2100"`
	StoreID    string `json:"storeId" validate:"omitempty,no_xss"`
	StartMonth int    `json:"startMonth" validate:"min=1,max=12,month_range"`
	EndMonth   int    `json:"endMonth" validate:"min=1,max=12"`
}

// UnitCategoryTotals ยอดรวมต่อหมวดหน่วยหนึ่งหมวดของสินค้าหนึ่งตัว
// AvgPrice = TotalAmount/TotalQuantity (0 เมื่อ quantity เป็น 0)
type UnitCategoryTotals struct {
	TotalQuantity float64 `json:"totalQuantity"`
	TotalAmount   float64 `json:"totalAmount"`
	Count         int     `json:"count"`
	AvgPrice      float64 `json:"avgPrice"`
}

// ByUnitCategory ยอดรวมแยกตามหมวดหน่วยมาตรฐานทั้งสามหมวด
// ป้ายหน่วยที่จัดหมวดไม่ได้จะไม่อยู่ในนี้ (ถูก log ไว้ ไม่ fatal)
type ByUnitCategory struct {
	Box   UnitCategoryTotals `json:"box"`
	Pack  UnitCategoryTotals `json:"pack"`
	Piece UnitCategoryTotals `json:"piece"`
}

// MonthlySalesEntry ยอดขายหนึ่งเดือนพร้อม diff เทียบเดือนก่อนหน้า
// เดือน 1 diff เป็น 0 เสมอ (ไม่มี baseline) และ DiffPercent เป็น 0 เมื่อเดือนก่อนเป็น 0
type MonthlySalesEntry struct {
	Month       int     `json:"month"` // 1-12
	TotalSales  float64 `json:"totalSales"`
	DiffAmount  float64 `json:"diffAmount"`
	DiffPercent float64 `json:"diffPercent"`
}

// ProductComparisonItem ยอดขายสินค้าหนึ่งตัวในขอบเขตที่ขอ
// Monthly มี 12 entry เสมอ (เดือน 1-12) ไม่ว่าข้อมูลจะโหว่แค่ไหน
type ProductComparisonItem struct {
	ProductCode        string              `json:"productCode"`
	ProductName        string              `json:"productName"`
	ByUnitCategory     ByUnitCategory      `json:"byUnitCategory"`
	Monthly            []MonthlySalesEntry `json:"monthly"`
	TotalSalesAllUnits float64             `json:"totalSalesAllUnits"` // ผลรวมสามหมวดหน่วย ปัดเป็นจำนวนเต็ม
}

// ComparisonMetadata ข้อมูลประกอบของรายงาน
type ComparisonMetadata struct {
	EmployeeID     string  `json:"employeeId"`
	EmployeeName   string  `json:"employeeName"`
	StoreID        string  `json:"storeId,omitempty"`
	StoreName      string  `json:"storeName,omitempty"`
	Year           int     `json:"year"`
	StartMonth     int     `json:"startMonth"`
	EndMonth       int     `json:"endMonth"`
	TotalProducts  int     `json:"totalProducts"`
	YearTotalSales float64 `json:"yearTotalSales"`
	GeneratedAt    string  `json:"generatedAt"`
}

// SalesComparisonReport ผลลัพธ์ของ GET /analytics/reports/sales-comparison
// Products เรียงตาม productCode จากน้อยไปมาก
type SalesComparisonReport struct {
	Products []ProductComparisonItem `json:"products"`
	Metadata ComparisonMetadata      `json:"metadata"`
}
