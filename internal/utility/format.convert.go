package utility

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID แปลงสตริงเป็น ObjectID (คืน NilObjectID เมื่อแปลงไม่ได้)
func String2ObjectID(id string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}

// ObjectID2String แปลง ObjectID เป็นสตริง
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// AnyToString แปลงค่าจาก payload แบบหลวม (map[string]interface{}) เป็นสตริง
// คืน "" พร้อม false เมื่อค่าเป็น nil หรือไม่ใช่ชนิดที่รองรับ
func AnyToString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case int32:
		return strconv.FormatInt(int64(s), 10), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case bool:
		return strconv.FormatBool(s), true
	case json.Number:
		return s.String(), true
	}
	return "", false
}

// AnyToFloat64 แปลงค่าตัวเลขจาก payload แบบหลวมเป็น float64
// คืน false เมื่อแปลงไม่ได้หรือผลลัพธ์ไม่ finite (NaN/Inf ห้ามหลุดไป downstream)
func AnyToFloat64(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// timeLayouts รูปแบบ timestamp ที่พบใน event log (POS ส่งมาหลายแบบ)
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFlexibleTime parse timestamp จากค่าแบบหลวม
// รองรับสตริงหลาย layout และตัวเลข unix milliseconds
// คืน zero time พร้อม false เมื่อ parse ไม่ได้
func ParseFlexibleTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, true
			}
		}
		// บางระบบส่ง unix millis มาเป็นสตริง
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil && ms > 1_000_000_000_000 {
			return time.UnixMilli(ms), true
		}
		return time.Time{}, false
	case float64:
		if t > 1_000_000_000_000 {
			return time.UnixMilli(int64(t)), true
		}
		return time.Time{}, false
	case int64:
		if t > 1_000_000_000_000 {
			return time.UnixMilli(t), true
		}
		return time.Time{}, false
	case time.Time:
		return t, !t.IsZero()
	case primitive.DateTime:
		return t.Time(), true
	}
	return time.Time{}, false
}
