package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // สำเร็จ
	StatusCreated   = 201 // สร้างใหม่สำเร็จ
	StatusNoContent = 204 // สำเร็จแต่ไม่มีเนื้อหาตอบกลับ

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // คำขอไม่ถูกต้อง
	StatusNotFound        = 404 // ไม่พบทรัพยากร
	StatusConflict        = 409 // ข้อมูลขัดแย้ง
	StatusTooManyRequests = 429 // คำขอมากเกินไป

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // ระบบผิดพลาด
	StatusServiceUnavailable  = 503 // บริการไม่พร้อมใช้งาน
)

// Response Messages
const (
	MsgSuccess = "ดำเนินการสำเร็จ"

	MsgBadRequest      = "คำขอไม่ถูกต้อง"
	MsgNotFound        = "ไม่พบข้อมูล"
	MsgTooManyRequests = "คำขอมากเกินไป กรุณาลองใหม่ภายหลัง"
	MsgInternalError   = "ระบบผิดพลาด"

	MsgValidationError = "ข้อมูลไม่ถูกต้อง"
	MsgDatabaseError   = "เกิดข้อผิดพลาดกับฐานข้อมูล"
)

// ErrorCode กำหนดรหัสข้อผิดพลาดแบบละเอียด
type ErrorCode struct {
	Code        string // รหัสข้อผิดพลาด (เช่น VAL_001)
	Category    string // หมวดหมู่ (เช่น Validation)
	SubCategory string // หมวดหมู่ย่อย (เช่น Input)
	Description string // คำอธิบาย
}

// รหัสข้อผิดพลาดตามหมวดหมู่ของระบบ
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "ข้อผิดพลาดภายในระบบ",
	}

	ErrCodeConfiguration = ErrorCode{
		Code:        "SYS_002",
		Category:    "System",
		SubCategory: "Configuration",
		Description: "ค่าคอนฟิกไม่ถูกต้อง",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "ข้อผิดพลาดการตรวจสอบข้อมูลทั่วไป",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "ข้อมูลขาเข้าไม่ถูกต้อง",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "รูปแบบข้อมูลไม่ถูกต้อง",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "ข้อผิดพลาดฐานข้อมูลทั่วไป",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "เชื่อมต่อฐานข้อมูลไม่สำเร็จ",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "สืบค้นข้อมูลไม่สำเร็จ",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "การดำเนินการทางธุรกิจผิดพลาด",
	}
)

// Error โครงสร้างข้อผิดพลาดพร้อมรายละเอียด
type Error struct {
	Code       ErrorCode // รหัสข้อผิดพลาด
	Message    string    // ข้อความ
	StatusCode int       // HTTP status code
	Details    any       // รายละเอียดเพิ่มเติม
}

// Error คืนข้อความของข้อผิดพลาด
func (e *Error) Error() string {
	return e.Message
}

// Is รองรับ errors.Is โดยเทียบ code และ message
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError สร้าง error ใหม่พร้อมข้อมูลครบ
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "ข้อมูลขาเข้าไม่ถูกต้อง", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "รูปแบบข้อมูลไม่ถูกต้อง", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "ข้อมูลที่จำเป็นไม่ครบ", StatusBadRequest, nil)

	// Database Errors
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "ไม่พบข้อมูล", StatusNotFound, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "เชื่อมต่อฐานข้อมูลไม่สำเร็จ", StatusServiceUnavailable, nil)

	// Configuration Errors — ถือเป็น fatal ตอน start เสมอ
	ErrInvalidTimezone = NewError(ErrCodeConfiguration, "timezone identifier ไม่ถูกต้อง", StatusInternalServerError, nil)
	ErrInvalidWindow   = NewError(ErrCodeConfiguration, "ความยาว window ต้องมากกว่าศูนย์", StatusInternalServerError, nil)
	ErrInvalidTopLimit = NewError(ErrCodeConfiguration, "จำนวนอันดับสูงสุดต้องมากกว่าศูนย์", StatusInternalServerError, nil)
)

// MongoDB Specific Errors
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, "เชื่อมต่อ MongoDB ไม่สำเร็จ", StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, "เครือข่ายขัดข้องระหว่างเชื่อมต่อ MongoDB", StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, "การเชื่อมต่อ MongoDB หมดเวลา", StatusServiceUnavailable, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, "สืบค้น MongoDB ไม่สำเร็จ", StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, "เขียนข้อมูล MongoDB ไม่สำเร็จ", StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, "ข้อมูลซ้ำใน MongoDB", StatusConflict, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, "ระบบ MongoDB ผิดพลาด", StatusInternalServerError, nil)
)

// ConvertMongoError แปลงข้อผิดพลาดจาก MongoDB เป็นข้อผิดพลาดของระบบ
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// ErrNotFound ไม่ต้องแปลง
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		case mongoErr.Code >= 500:
			return ErrMongoSystem
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
