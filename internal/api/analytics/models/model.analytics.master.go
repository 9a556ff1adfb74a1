package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Employee เอกสาร master data พนักงาน
type Employee struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code     string             `bson:"code" json:"code"`
	Name     string             `bson:"name" json:"name"`
	StoreID  string             `bson:"storeId" json:"storeId"`
	Position string             `bson:"position,omitempty" json:"position,omitempty"`
	Active   bool               `bson:"active" json:"active"`
}

// Store เอกสาร master data สาขา
type Store struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code     string             `bson:"code" json:"code"`
	Name     string             `bson:"name" json:"name"`
	Province string             `bson:"province,omitempty" json:"province,omitempty"`
	Active   bool               `bson:"active" json:"active"`
}

// Product เอกสาร master data สินค้า
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code     string             `bson:"code" json:"code"`
	Name     string             `bson:"name" json:"name"`
	BaseUnit string             `bson:"baseUnit,omitempty" json:"baseUnit,omitempty"`
	Active   bool               `bson:"active" json:"active"`
}

// ProductIdentity ข้อมูลสินค้าแบบย่อที่ normalizer ใช้ map id → {code,name}
type ProductIdentity struct {
	Code string
	Name string
}

// MasterData snapshot ของ master data ที่ fetch มาก่อนเรียก engine
// engine รับเป็น argument ตรง ๆ ไม่ query เองเพื่อให้ทดสอบง่ายและ parallel-safe
type MasterData struct {
	Employees map[string]string          // employeeId → ชื่อ
	Stores    map[string]string          // storeId → ชื่อ
	Products  map[string]ProductIdentity // productId → {code,name}
}

// NewMasterData สร้าง MasterData เปล่า (map ไม่เป็น nil)
func NewMasterData() MasterData {
	return MasterData{
		Employees: make(map[string]string),
		Stores:    make(map[string]string),
		Products:  make(map[string]ProductIdentity),
	}
}
