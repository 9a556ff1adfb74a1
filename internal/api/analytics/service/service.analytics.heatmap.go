// Heatmap Builder — ตาราง 7×24 (วันในสัปดาห์ × ชั่วโมง) ของ window ปัจจุบัน
package analyticssvc

import (
	"time"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/dto"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/models"
)

// BuildHeatmaps สร้าง heatmap การเข้างานและยอดขาย
// มิติตารางคงที่ 7×24 เสมอ ช่องที่ไม่มีข้อมูลเป็นศูนย์ — แถว 0 คือวันอาทิตย์
// attendance นับเฉพาะ check-in, sales รวมยอดเงินดิบไม่เฉลี่ย
func (e *Engine) BuildHeatmaps(attendance []models.AttendanceRecord, sales []models.SalesRecord, ref time.Time) dto.HeatmapSet {
	win := e.currentWindow(ref)
	var set dto.HeatmapSet

	for _, rec := range attendance {
		if !win.contains(rec.Timestamp) || rec.Status != models.StatusCheckIn {
			continue
		}
		if rec.Weekday < 0 || rec.Weekday > 6 || rec.Hour < 0 || rec.Hour > 23 {
			continue
		}
		set.Attendance[rec.Weekday][rec.Hour]++
	}

	for _, rec := range sales {
		if !win.contains(rec.Timestamp) {
			continue
		}
		if rec.Weekday < 0 || rec.Weekday > 6 || rec.Hour < 0 || rec.Hour > 23 {
			continue
		}
		set.Sales[rec.Weekday][rec.Hour] += rec.Total
	}

	return set
}
