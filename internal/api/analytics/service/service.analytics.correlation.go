// Correlation Analyzer — Pearson ระหว่างจำนวน check-in รายวันกับยอดขายรายวัน
package analyticssvc

import (
	"math"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/dto"
)

// ระดับความแรงของสหสัมพันธ์
const (
	StrengthStrong   = "strong"
	StrengthModerate = "moderate"
	StrengthWeak     = "weak"
)

// AnalyzeCorrelation คำนวณสหสัมพันธ์จากอนุกรมรายวันของ timeline
// สองอนุกรมยาวเท่ากันโดยโครงสร้าง (วันเดียวกันจาก BuildTimeline) จึงไม่ต้อง align เอง
func (e *Engine) AnalyzeCorrelation(timeline []dto.TimelinePoint) dto.CorrelationResult {
	checkIns := make([]float64, 0, len(timeline))
	revenue := make([]float64, 0, len(timeline))
	for _, point := range timeline {
		checkIns = append(checkIns, float64(point.CheckIns))
		revenue = append(revenue, point.Revenue)
	}

	value := pearson(checkIns, revenue)
	return dto.CorrelationResult{
		Value:    value,
		Strength: classifyStrength(value),
	}
}

// pearson สัมประสิทธิ์สหสัมพันธ์ของสองอนุกรม
// อนุกรมสั้นกว่า 2 จุด หรือฝั่งใดฝั่งหนึ่งค่าคงที่ (variance ศูนย์) ได้ 0 — ไม่มีทาง NaN
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var covar, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		covar += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return covar / math.Sqrt(varX*varY)
}

// classifyStrength จัดระดับตามค่าสัมบูรณ์: >0.7 strong, >0.4 moderate, ที่เหลือ weak
func classifyStrength(value float64) string {
	abs := math.Abs(value)
	switch {
	case abs > 0.7:
		return StrengthStrong
	case abs > 0.4:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}
