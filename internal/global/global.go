// Package global เก็บตัวแปรระดับแอปที่ init ครั้งเดียวตอน start
// (config, mongo client, collection registry, validator)
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/itkpf2018/webapp-KPF-sub005/config"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/registry"
)

// ServerConfig ค่าคอนฟิกของแอป โหลดครั้งเดียวใน cmd/server
var ServerConfig *config.Configuration

// MongoClient client เชื่อมต่อ MongoDB ใช้ร่วมทั้งแอป
var MongoClient *mongo.Client

// RegistryCollections registry ของ *mongo.Collection ตามชื่อ collection
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()

// Validate instance ของ validator ใช้ตรวจ query DTO
var Validate *validator.Validate

// colNames ชื่อ collections ทั้งหมดที่แอปใช้
type colNames struct {
	Events    string // event log ดิบ (attendance + sales) — อ่านอย่างเดียว
	Employees string // master data พนักงาน
	Stores    string // master data สาขา
	Products  string // master data สินค้า
}

// MongoDB_ColNames ชื่อ collections ใน MongoDB
var MongoDB_ColNames = colNames{
	Events:    "events",
	Employees: "employees",
	Stores:    "stores",
	Products:  "products",
}

// ColNameList คืนรายชื่อ collections ทั้งหมดสำหรับลงทะเบียนใน registry
func ColNameList() []string {
	return []string{
		MongoDB_ColNames.Events,
		MongoDB_ColNames.Employees,
		MongoDB_ColNames.Stores,
		MongoDB_ColNames.Products,
	}
}
