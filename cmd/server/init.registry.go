package main

import (
	"github.com/itkpf2018/webapp-KPF-sub005/internal/global"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/logger"
)

// InitRegistry ลงทะเบียน collection ทั้งหมดเข้า registry กลาง
// service ชั้นบนดึง collection จาก registry เท่านั้น ไม่สร้างเอง
func InitRegistry() {
	log := logger.GetAppLogger()

	db := global.MongoClient.Database(global.ServerConfig.MongoDB_DBName)
	for _, name := range global.ColNameList() {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			log.Fatalf("ลงทะเบียน collection %s ไม่สำเร็จ: %v", name, err)
		}
	}

	log.WithFields(map[string]interface{}{
		"collections": global.ColNameList(),
	}).Info("ลงทะเบียน collections สำเร็จ")
}
