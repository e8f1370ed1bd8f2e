package slider

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/slider/pkg/ecs"
	"github.com/decker502/slider/pkg/gesture"
)

func TestValueToPoint(t *testing.T) {
	_, s := newShownSlider(t, false, testWidth)

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"最小值位于半个滑块宽度处", 0, 8},
		{"中间值", 50, 108},
		{"最大值", 100, 208},
		{"四舍五入到整像素", 10.3, 29}, // round(20.6) + 8
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ValueToPoint(tt.value); got != tt.want {
				t.Errorf("ValueToPoint(%v) = %v, 期望 %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestPointToValue(t *testing.T) {
	tests := []struct {
		name  string
		step  float64
		point float64
		want  float64
	}{
		{"刻度上的点", 1, 108, 50},
		{"距离相同时取较小的刻度", 1, 109, 50},
		{"吸附到较近的刻度", 1, 110, 51},
		{"左侧越界吸附到最小值", 1, 0, 0},
		{"右侧越界吸附到最大值", 1, 500, 100},
		{"步长 5 向上吸附", 5, 114, 55},
		{"步长 5 向下吸附", 5, 112, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s := newShownSlider(t, false, testWidth)
			s.SetStep(tt.step)
			if got := s.PointToValue(tt.point); got != tt.want {
				t.Errorf("PointToValue(%v) = %v, 期望 %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestPointToValue_FractionalStep(t *testing.T) {
	_, s := newShownSlider(t, false, testWidth)
	s.SetMaxValue(1)
	s.SetStep(0.1)

	for _, v := range []float64{0, 0.1, 0.2, 0.3, 0.6, 0.7, 0.9, 1} {
		if got := s.PointToValue(s.ValueToPoint(v)); got != v {
			t.Errorf("PointToValue(ValueToPoint(%v)) = %v，应吸附到整齐的刻度", v, got)
		}
	}

	s.OnTap(&gesture.Point{X: s.ValueToPoint(0.3), Y: 30})
	if s.Value() != 0.3 || s.CaptionText(Low) != "0.3" {
		t.Errorf("点击后 value=%v caption=%q，期望 0.3", s.Value(), s.CaptionText(Low))
	}
}

func TestPointToValue_LargeDomain(t *testing.T) {
	_, s := newShownSlider(t, false, testWidth)
	s.SetMaxValue(2e9)

	start := time.Now()
	for _, v := range []float64{0, 1e9, 2e9} {
		if got := s.PointToValue(s.ValueToPoint(v)); got != v {
			t.Errorf("PointToValue(ValueToPoint(%v)) = %v", v, got)
		}
	}
	if got := s.PointToValue(1e6); got != 2e9 {
		t.Errorf("右侧越界应吸附到最大值，实际 %v", got)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("大范围换算耗时 %v，不应与刻度数量成正比", elapsed)
	}
}

func TestPointToValue_OffsetTrack(t *testing.T) {
	em := ecs.NewEntityManager()
	s := New(em, false)
	s.SetBounds(0, 0, 236, 40)
	s.SetPadding(20, 0, 0, 0)
	s.Show()

	for _, v := range []float64{0, 1, 37, 99, 100} {
		if got := s.PointToValue(s.ValueToPoint(v)); got != v {
			t.Errorf("滑轨有偏移时往返换算 %v -> %v", v, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, width := range []float64{testWidth, 250, 333} {
		_, s := newShownSlider(t, false, width)

		for v := 0.0; v <= 100; v += 0.37 {
			first := s.PointToValue(s.ValueToPoint(v))
			if math.Abs(first-v) > s.Step() {
				t.Errorf("宽度 %v: %v 往返后为 %v，超过一个步长", width, v, first)
			}
			if math.Mod(first, s.Step()) != 0 {
				t.Errorf("宽度 %v: %v 往返后 %v 不在刻度上", width, v, first)
			}
			second := s.PointToValue(s.ValueToPoint(first))
			if second != first {
				t.Errorf("宽度 %v: 第二次往返应稳定，%v -> %v", width, first, second)
			}
		}
	}
}

func TestPixelsPerStep_Degenerate(t *testing.T) {
	t.Run("最小值等于最大值", func(t *testing.T) {
		_, s := newShownSlider(t, false, testWidth)
		s.SetMinValue(5)
		s.SetMaxValue(5)

		if pps := s.getPixelsPerStep(); pps != 0 {
			t.Errorf("退化范围的像素比例应为 0，实际 %v", pps)
		}
		for _, p := range []float64{0, 100, 300} {
			if got := s.PointToValue(p); got != 5 {
				t.Errorf("PointToValue(%v) = %v, 期望 5", p, got)
			}
		}
		if got := s.ValueToPoint(5); got != 8 {
			t.Errorf("ValueToPoint(5) = %v, 期望 8", got)
		}
	})

	t.Run("未显示时滑轨宽度为 0", func(t *testing.T) {
		em := ecs.NewEntityManager()
		s := New(em, false)
		if got := s.PointToValue(80); got != 0 {
			t.Errorf("滑轨窄于滑块时应映射到最小值，实际 %v", got)
		}
	})
}

func TestPixelsPerStep_Memoized(t *testing.T) {
	_, s := newShownSlider(t, false, testWidth)

	if pps := s.getPixelsPerStep(); pps != 2 {
		t.Fatalf("像素比例期望 2，实际 %v", pps)
	}
	s.maxValue = 200 // 绕过 setter：缓存仍然有效
	if pps := s.getPixelsPerStep(); pps != 2 {
		t.Errorf("未失效时应返回缓存值，实际 %v", pps)
	}
	s.InvalidateScale()
	if pps := s.getPixelsPerStep(); pps != 1 {
		t.Errorf("失效后应重新计算，实际 %v", pps)
	}
}
