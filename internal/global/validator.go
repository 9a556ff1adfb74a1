package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator สร้างและลงทะเบียน custom validators
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("month_range", validateMonthRange)
}

// validateNoXSS กันสตริงที่มี pattern อันตรายหลุดเข้ามาทาง query
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"eval(",
		"document.cookie",
		"<iframe",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateMonthRange ตรวจว่า StartMonth <= EndMonth
// struct ที่ใช้ tag นี้ต้องมี field StartMonth และ EndMonth เป็น int
func validateMonthRange(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if !parent.IsValid() {
		return true
	}
	startField := parent.FieldByName("StartMonth")
	endField := parent.FieldByName("EndMonth")
	if !startField.IsValid() || !endField.IsValid() {
		return true
	}
	return startField.Int() <= endField.Int()
}
