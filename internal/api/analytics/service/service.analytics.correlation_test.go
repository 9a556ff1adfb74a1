package analyticssvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/dto"
)

func TestPearson(t *testing.T) {
	t.Run("สัมพันธ์เชิงเส้นสมบูรณ์ได้ 1", func(t *testing.T) {
		value := pearson([]float64{1, 2, 3, 4}, []float64{10, 20, 30, 40})
		assert.InDelta(t, 1.0, value, 1e-9)
	})

	t.Run("สัมพันธ์ผกผันสมบูรณ์ได้ -1", func(t *testing.T) {
		value := pearson([]float64{1, 2, 3, 4}, []float64{40, 30, 20, 10})
		assert.InDelta(t, -1.0, value, 1e-9)
	})

	t.Run("อนุกรมค่าคงที่ได้ 0 ไม่ใช่ NaN", func(t *testing.T) {
		assert.Equal(t, 0.0, pearson([]float64{5, 5, 5}, []float64{1, 2, 3}))
		assert.Equal(t, 0.0, pearson([]float64{1, 2, 3}, []float64{7, 7, 7}))
	})

	t.Run("อนุกรมสั้นเกินได้ 0", func(t *testing.T) {
		assert.Equal(t, 0.0, pearson([]float64{1}, []float64{2}))
		assert.Equal(t, 0.0, pearson(nil, nil))
	})
}

func TestClassifyStrength(t *testing.T) {
	assert.Equal(t, StrengthStrong, classifyStrength(0.85))
	assert.Equal(t, StrengthStrong, classifyStrength(-0.95))
	assert.Equal(t, StrengthModerate, classifyStrength(0.7)) // ขอบ 0.7 ยังไม่ strong
	assert.Equal(t, StrengthModerate, classifyStrength(0.5))
	assert.Equal(t, StrengthWeak, classifyStrength(0.4)) // ขอบ 0.4 ยังไม่ moderate
	assert.Equal(t, StrengthWeak, classifyStrength(0))
}

func TestAnalyzeCorrelation(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("เข้างานมากยอดขายมากต้องได้ strong", func(t *testing.T) {
		timeline := []dto.TimelinePoint{
			{CheckIns: 1, Revenue: 100},
			{CheckIns: 2, Revenue: 200},
			{CheckIns: 3, Revenue: 300},
			{CheckIns: 4, Revenue: 400},
		}
		result := engine.AnalyzeCorrelation(timeline)
		assert.InDelta(t, 1.0, result.Value, 1e-9)
		assert.Equal(t, StrengthStrong, result.Strength)
	})

	t.Run("timeline ว่างได้ 0 weak", func(t *testing.T) {
		result := engine.AnalyzeCorrelation(nil)
		assert.Equal(t, 0.0, result.Value)
		assert.Equal(t, StrengthWeak, result.Strength)
	})
}
