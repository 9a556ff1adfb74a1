// Package models - โครงสร้างข้อมูลของ analytics engine
// RawEvent คือเอกสารใน event log (เขียนโดยระบบอื่น อ่านอย่างเดียวที่นี่)
// AttendanceRecord/SalesRecord เป็น record ที่ normalize แล้ว มีอายุแค่หนึ่งรอบการคำนวณ
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scope ของ event ใน log
const (
	ScopeAttendance = "attendance"
	ScopeSales      = "sales"
)

// สถานะการเข้างานหลัง normalize แล้ว
// ค่าอื่นนอกจาก "check-out" ถูกตีความเป็น "check-in" ทั้งหมด
const (
	StatusCheckIn  = "check-in"
	StatusCheckOut = "check-out"
)

// ValueUnspecified ค่า default เมื่อ field สตริงหายไปจาก payload
const ValueUnspecified = "ไม่ระบุ"

// RawEvent เอกสาร event ดิบจาก collection events
// meta เป็น payload แบบหลวมตามที่ POS/เครื่องสแกนส่งมา — field อาจหายหรือชนิดไม่ตรง
type RawEvent struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Scope     string                 `bson:"scope" json:"scope"` // attendance | sales
	Timestamp string                 `bson:"timestamp" json:"timestamp"`
	Meta      map[string]interface{} `bson:"meta" json:"meta"`
}

// AttendanceRecord record การเข้า/ออกงานที่ normalize แล้ว
// dayKey/monthKey คำนวณจาก timestamp ใน timezone ที่คอนฟิก ไม่ใช่ UTC
type AttendanceRecord struct {
	Timestamp    time.Time // instant จริงของ event
	DayKey       string    // YYYY-MM-DD ใน timezone ที่คอนฟิก
	MonthKey     string    // YYYY-MM
	Year         int
	Month        int // 1-12
	StoreID      string
	StoreName    string
	EmployeeID   string
	EmployeeName string
	Status       string // check-in | check-out
	Hour         int    // 0-23
	Weekday      int    // 0=อาทิตย์ ... 6=เสาร์
}

// SalesRecord record รายการขายที่ normalize แล้ว
// Total/Quantity การันตีว่า finite — แถวที่ parse ไม่ผ่านถูกทิ้งตั้งแต่ชั้น normalize
type SalesRecord struct {
	Timestamp    time.Time
	DayKey       string
	MonthKey     string
	Year         int
	Month        int
	StoreID      string
	StoreName    string
	EmployeeID   string
	EmployeeName string
	ProductID    string
	ProductCode  string
	ProductName  string
	UnitLabel    string // ป้ายหน่วยจาก POS เช่น "กล่อง", "แพ็ค" — ยังไม่ normalize
	Total        float64
	Quantity     float64
	Hour         int
	Weekday      int
}
