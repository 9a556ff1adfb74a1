// Package analyticssvc - engine วิเคราะห์ข้อมูลเข้างาน + ยอดขาย POS
// แบ่งเป็นสองชั้น: Engine เป็น pure computation (ไม่มี I/O, สร้าง state ใหม่ทุกครั้งที่เรียก)
// และ AnalyticsService ครอบ Engine พร้อมชั้น fetch จาก MongoDB
package analyticssvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/models"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/common"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/global"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/utility"
)

// AlertThresholds เกณฑ์การแจ้งเตือน (หน่วยเปอร์เซ็นต์ ยกเว้น CorrelationInfo)
type AlertThresholds struct {
	RevenueCritical float64 // growth ยอดขายต่ำกว่านี้ = critical
	RevenueWarning  float64 // growth ยอดขายต่ำกว่านี้ = warning
	CheckInWarning  float64 // growth การเข้างานต่ำกว่านี้ = warning
	CorrelationInfo float64 // |correlation| ต่ำกว่านี้ = info
}

// DefaultThresholds เกณฑ์เริ่มต้นตามที่ทีม business กำหนด
func DefaultThresholds() AlertThresholds {
	return AlertThresholds{
		RevenueCritical: -20,
		RevenueWarning:  -10,
		CheckInWarning:  -15,
		CorrelationInfo: 0.3,
	}
}

// Settings คอนฟิกการคำนวณของ engine — resolve ครั้งเดียวตอนสร้าง
type Settings struct {
	Timezone   string // IANA identifier เช่น Asia/Bangkok
	WindowDays int    // ความยาว window เปรียบเทียบ
	TopLimit   int    // จำนวนอันดับสูงสุดต่อมิติใน rollup
	Thresholds AlertThresholds
}

// Engine ส่วนคำนวณ pure ของ analytics
// ไม่มี mutable state ข้ามการเรียก — ทุก accumulator สร้างใหม่ต่อ call จึง parallel-safe
type Engine struct {
	loc        *time.Location
	timezone   string
	windowDays int
	topLimit   int
	thresholds AlertThresholds
}

// NewEngine สร้าง Engine จาก Settings
// timezone ผิด, window ไม่เป็นบวก หรือ topLimit ไม่เป็นบวก ถือเป็น configuration
// error ทั้งหมด — ผู้เรียกต้อง fatal ค่า default อยู่ที่ชั้น config ไม่ใช่ที่นี่
// ห้ามแก้เงียบ ๆ เพราะจะทำให้ทุกการคำนวณหลังจากนั้นผิดโดยไม่มีใครรู้
func NewEngine(st Settings) (*Engine, error) {
	if st.WindowDays <= 0 {
		return nil, fmt.Errorf("window %d วันไม่ถูกต้อง: %w", st.WindowDays, common.ErrInvalidWindow)
	}
	loc, err := time.LoadLocation(st.Timezone)
	if err != nil {
		return nil, fmt.Errorf("โหลด timezone %q ไม่สำเร็จ: %w", st.Timezone, common.ErrInvalidTimezone)
	}
	if st.TopLimit <= 0 {
		return nil, fmt.Errorf("topLimit %d ไม่ถูกต้อง: %w", st.TopLimit, common.ErrInvalidTopLimit)
	}
	return &Engine{
		loc:        loc,
		timezone:   st.Timezone,
		windowDays: st.WindowDays,
		topLimit:   st.TopLimit,
		thresholds: st.Thresholds,
	}, nil
}

// AnalyticsService ครอบ Engine พร้อม collection สำหรับ fetch event log และ master data
type AnalyticsService struct {
	*Engine
	eventColl    *mongo.Collection
	employeeColl *mongo.Collection
	storeColl    *mongo.Collection
	productColl  *mongo.Collection
}

// NewAnalyticsService สร้าง service จาก global config และ collection registry
func NewAnalyticsService() (*AnalyticsService, error) {
	cfg := global.ServerConfig
	if cfg == nil {
		return nil, fmt.Errorf("ยังไม่ได้ init configuration: %w", common.ErrInvalidInput)
	}

	engine, err := NewEngine(Settings{
		Timezone:   cfg.Analytics_Timezone,
		WindowDays: cfg.Analytics_WindowDays,
		TopLimit:   cfg.Analytics_TopLimit,
		Thresholds: AlertThresholds{
			RevenueCritical: cfg.Alert_RevenueCritical,
			RevenueWarning:  cfg.Alert_RevenueWarning,
			CheckInWarning:  cfg.Alert_CheckInWarning,
			CorrelationInfo: cfg.Alert_CorrelationInfo,
		},
	})
	if err != nil {
		return nil, err
	}

	svc := &AnalyticsService{Engine: engine}
	colls := map[string]**mongo.Collection{
		global.MongoDB_ColNames.Events:    &svc.eventColl,
		global.MongoDB_ColNames.Employees: &svc.employeeColl,
		global.MongoDB_ColNames.Stores:    &svc.storeColl,
		global.MongoDB_ColNames.Products:  &svc.productColl,
	}
	for name, target := range colls {
		coll, ok := global.RegistryCollections.Get(name)
		if !ok {
			return nil, fmt.Errorf("ไม่พบ collection %s ใน registry: %w", name, common.ErrNotFound)
		}
		*target = coll
	}

	return svc, nil
}

// fetchEvents อ่าน event ดิบตาม scope เรียงตาม timestamp จากเก่าไปใหม่
// timestamp ใน log มีหลาย format จึงกรองช่วงเวลาหลัง normalize ไม่กรองใน query
// ขนาดข้อมูลถูก bound โดยรอบการ archive ของ event log (หนึ่ง reporting period)
func (s *AnalyticsService) fetchEvents(ctx context.Context, scopes []string) ([]models.RawEvent, error) {
	filter := bson.M{}
	if len(scopes) > 0 {
		filter["scope"] = bson.M{"$in": scopes}
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := s.eventColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var events []models.RawEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if events == nil {
		events = []models.RawEvent{}
	}
	return events, nil
}

// fetchMasterData อ่าน master data ทั้งหมดเป็น snapshot ก่อนเรียก engine
// engine จะไม่แตะฐานข้อมูลอีกหลังจากจุดนี้
func (s *AnalyticsService) fetchMasterData(ctx context.Context) (models.MasterData, error) {
	md := models.NewMasterData()

	var employees []models.Employee
	cursor, err := s.employeeColl.Find(ctx, bson.M{})
	if err != nil {
		return md, common.ConvertMongoError(err)
	}
	if err := cursor.All(ctx, &employees); err != nil {
		return md, common.ConvertMongoError(err)
	}
	for _, e := range employees {
		md.Employees[utility.ObjectID2String(e.ID)] = e.Name
	}

	var stores []models.Store
	cursor, err = s.storeColl.Find(ctx, bson.M{})
	if err != nil {
		return md, common.ConvertMongoError(err)
	}
	if err := cursor.All(ctx, &stores); err != nil {
		return md, common.ConvertMongoError(err)
	}
	for _, st := range stores {
		md.Stores[utility.ObjectID2String(st.ID)] = st.Name
	}

	var products []models.Product
	cursor, err = s.productColl.Find(ctx, bson.M{})
	if err != nil {
		return md, common.ConvertMongoError(err)
	}
	if err := cursor.All(ctx, &products); err != nil {
		return md, common.ConvertMongoError(err)
	}
	for _, p := range products {
		md.Products[utility.ObjectID2String(p.ID)] = models.ProductIdentity{Code: p.Code, Name: p.Name}
	}

	return md, nil
}

// safeDiv หารพร้อม branch ศูนย์ชัดเจน — ตัวหารเป็น 0 ได้ 0 ไม่มีทาง NaN/Inf
// การหารทุกจุดใน engine (avgTicket, efficiency, productivity, avgPrice, diff)
// ต้องผ่าน helper นี้ ห้าม inline เอง
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// safeGrowth เปอร์เซ็นต์การเติบโตเทียบค่าก่อนหน้า — previous ไม่เป็นบวกได้ 0
func safeGrowth(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
