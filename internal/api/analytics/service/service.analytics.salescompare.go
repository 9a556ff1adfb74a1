// Unit-Normalized Sales Aggregator — รายงานเปรียบเทียบยอดขายรายเดือนต่อสินค้า
// ป้ายหน่วยจากหน้างานสะกดไม่นิ่ง (BOX, box, กล่อง, ลัง) จึง map เข้าหมวดมาตรฐานสามหมวด
// ด้วยตาราง keyword แบบ substring ไม่สน case
package analyticssvc

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/dto"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/models"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/logger"
)

// หมวดหน่วยมาตรฐาน
const (
	UnitBox   = "box"
	UnitPack  = "pack"
	UnitPiece = "piece"
)

// unitKeywordTable ตาราง keyword ต่อหมวด ตรวจตามลำดับ: box ก่อน pack ก่อน piece
// ลำดับสำคัญเพราะป้ายบางตัวมีหลายคำปน เช่น "กล่อง 12 ชิ้น" ต้องเข้าหมวด box
var unitKeywordTable = []struct {
	Category string
	Keywords []string
}{
	{UnitBox, []string{"box", "กล่อง", "ลัง", "crate"}},
	{UnitPack, []string{"pack", "แพ็ค", "แพค", "โหล"}},
	{UnitPiece, []string{"piece", "ชิ้น", "อัน", "ซอง", "sachet"}},
}

// ClassifyUnit จัดหมวดป้ายหน่วย คืน false เมื่อไม่เข้าหมวดใดเลย
func ClassifyUnit(label string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(label))
	if lower == "" {
		return "", false
	}
	for _, entry := range unitKeywordTable {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry.Category, true
			}
		}
	}
	return "", false
}

// productAccum ตัวสะสมต่อสินค้าหนึ่งตัว
type productAccum struct {
	code    string
	name    string
	byUnit  map[string]*unitAccum
	monthly [13]float64 // index 1-12, ช่อง 0 ไม่ใช้
}

type unitAccum struct {
	quantity float64
	amount   float64
	count    int
}

// ComposeComparison สร้างรายงานเปรียบเทียบจาก record ขายที่ normalize แล้ว
// pure function: กรองตาม query เอง ผู้เรียกส่ง record ทั้งปีมาได้เลย
// กติกาสะสม: ยอดรายเดือนนับทุกแถวที่ผ่านตัวกรอง แต่ยอดแยกหมวดหน่วยนับเฉพาะแถวที่
// จัดหมวดได้ — ป้ายที่จัดไม่ได้ถูก log ไว้ ไม่ทำให้รายงานล้ม
func (e *Engine) ComposeComparison(sales []models.SalesRecord, query dto.SalesComparisonQuery, md models.MasterData, ref time.Time) dto.SalesComparisonReport {
	startMonth := query.StartMonth
	endMonth := query.EndMonth
	if startMonth == 0 {
		startMonth = 1
	}
	if endMonth == 0 {
		endMonth = 12
	}

	accum := make(map[string]*productAccum)
	unmatched := make(map[string]int)

	for _, rec := range sales {
		if rec.EmployeeID != query.EmployeeID || rec.Year != query.Year {
			continue
		}
		if query.StoreID != "" && rec.StoreID != query.StoreID {
			continue
		}
		if rec.Month < startMonth || rec.Month > endMonth {
			continue
		}

		p, exists := accum[rec.ProductCode]
		if !exists {
			p = &productAccum{
				code:   rec.ProductCode,
				name:   rec.ProductName,
				byUnit: make(map[string]*unitAccum),
			}
			accum[rec.ProductCode] = p
		}

		p.monthly[rec.Month] += rec.Total

		category, ok := ClassifyUnit(rec.UnitLabel)
		if !ok {
			unmatched[rec.UnitLabel]++
			continue
		}
		u, exists := p.byUnit[category]
		if !exists {
			u = &unitAccum{}
			p.byUnit[category] = u
		}
		u.quantity += rec.Quantity
		u.amount += rec.Total
		u.count++
	}

	if len(unmatched) > 0 {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"labels": unmatched,
		}).Warn("พบป้ายหน่วยที่จัดหมวดไม่ได้ ถูกตัดออกจากยอดแยกหมวด")
	}

	products := make([]dto.ProductComparisonItem, 0, len(accum))
	var yearTotal float64
	for _, p := range accum {
		item := dto.ProductComparisonItem{
			ProductCode: p.code,
			ProductName: p.name,
			ByUnitCategory: dto.ByUnitCategory{
				Box:   buildUnitTotals(p.byUnit[UnitBox]),
				Pack:  buildUnitTotals(p.byUnit[UnitPack]),
				Piece: buildUnitTotals(p.byUnit[UnitPiece]),
			},
			Monthly: buildMonthlySeries(p.monthly),
		}
		item.TotalSalesAllUnits = roundAmount(
			item.ByUnitCategory.Box.TotalAmount +
				item.ByUnitCategory.Pack.TotalAmount +
				item.ByUnitCategory.Piece.TotalAmount)
		products = append(products, item)

		for month := 1; month <= 12; month++ {
			yearTotal += p.monthly[month]
		}
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ProductCode < products[j].ProductCode
	})

	storeName := ""
	if query.StoreID != "" {
		storeName = resolveName(md.Stores, query.StoreID, "")
	}

	return dto.SalesComparisonReport{
		Products: products,
		Metadata: dto.ComparisonMetadata{
			EmployeeID:     query.EmployeeID,
			EmployeeName:   resolveName(md.Employees, query.EmployeeID, ""),
			StoreID:        query.StoreID,
			StoreName:      storeName,
			Year:           query.Year,
			StartMonth:     startMonth,
			EndMonth:       endMonth,
			TotalProducts:  len(products),
			YearTotalSales: yearTotal,
			GeneratedAt:    ref.In(e.loc).Format(time.RFC3339),
		},
	}
}

// GetSalesComparison ดึง event ขายทั้งหมดแล้วประกอบรายงานเปรียบเทียบ
func (s *AnalyticsService) GetSalesComparison(ctx context.Context, query dto.SalesComparisonQuery) (dto.SalesComparisonReport, error) {
	ref := time.Now()

	events, err := s.fetchEvents(ctx, []string{models.ScopeSales})
	if err != nil {
		return dto.SalesComparisonReport{}, err
	}
	md, err := s.fetchMasterData(ctx)
	if err != nil {
		return dto.SalesComparisonReport{}, err
	}

	normalized := s.Normalize(events, md)
	return s.ComposeComparison(normalized.Sales, query, md, ref), nil
}

// buildUnitTotals แปลงตัวสะสมเป็น DTO — nil (ไม่มีแถวในหมวด) ได้ศูนย์ทั้งชุด
func buildUnitTotals(u *unitAccum) dto.UnitCategoryTotals {
	if u == nil {
		return dto.UnitCategoryTotals{}
	}
	return dto.UnitCategoryTotals{
		TotalQuantity: u.quantity,
		TotalAmount:   u.amount,
		Count:         u.count,
		AvgPrice:      safeDiv(u.amount, u.quantity),
	}
}

// buildMonthlySeries สร้างอนุกรม 12 เดือนพร้อม diff เทียบเดือนก่อนหน้า
// เดือน 1 ไม่มี baseline จึง diff เป็นศูนย์เสมอ
func buildMonthlySeries(monthly [13]float64) []dto.MonthlySalesEntry {
	series := make([]dto.MonthlySalesEntry, 0, 12)
	for month := 1; month <= 12; month++ {
		entry := dto.MonthlySalesEntry{
			Month:      month,
			TotalSales: monthly[month],
		}
		if month > 1 {
			prev := monthly[month-1]
			entry.DiffAmount = monthly[month] - prev
			entry.DiffPercent = safeGrowth(monthly[month], prev)
		}
		series = append(series, entry)
	}
	return series
}

// roundAmount ปัดยอดเงินเป็นจำนวนเต็มด้วย decimal กัน float ปัดเพี้ยนที่ .5
func roundAmount(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(0).InexactFloat64()
}
