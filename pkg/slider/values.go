package slider

import (
	"log"
	"math"
)

// MinValue 最小值
func (s *Slider) MinValue() float64 { return s.minValue }

// MaxValue 最大值
func (s *Slider) MaxValue() float64 { return s.maxValue }

// Step 步长
func (s *Slider) Step() float64 { return s.step }

// LowValue 主滑块的值，未设置时为最小值
func (s *Slider) LowValue() float64 {
	if s.lowValue != nil {
		return *s.lowValue
	}
	return s.minValue
}

// UpValue 上限滑块的值，未设置时为最大值；单值模式下始终跟随最大值
func (s *Slider) UpValue() float64 {
	if s.isRange && s.upValue != nil {
		return *s.upValue
	}
	return s.maxValue
}

// Value 单值模式下的值（等同于 LowValue）
func (s *Slider) Value() float64 {
	return s.LowValue()
}

// SetValue 设置主滑块的值；范围模式下同时把上限重置为最大值
func (s *Slider) SetValue(v float64) {
	s.SetLowValue(v)
	if s.isRange {
		s.SetUpValue(s.maxValue)
	}
}

// SetLowValue 设置主滑块的值
// 先限制到 ≥ 最小值，再限制到 ≤ 上限（范围模式）或 ≤ 最大值（单值模式），
// 已显示时按保存的值重新定位滑块，最后触发 ValueChanged（单值）或 LowValueChanged（范围）
func (s *Slider) SetLowValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = math.Max(s.minValue, v)
	if s.isRange {
		v = math.Min(v, s.UpValue())
	} else {
		v = math.Min(v, s.maxValue)
	}
	s.lowValue = &v

	s.refreshPositions()
	s.raise(Low, v)
}

// SetUpValue 设置上限滑块的值
// 先限制到 ≤ 最大值，再限制到 ≥ 主滑块的值，已显示时重新定位，最后触发 UpValueChanged
func (s *Slider) SetUpValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = math.Min(s.maxValue, v)
	v = math.Max(v, s.LowValue())
	s.upValue = &v

	s.refreshPositions()
	s.raise(High, v)
}

// SetMinValue 设置最小值
// 主滑块未设置或小于新最小值时被推到新最小值；新最小值大于最大值时最大值随之提高
func (s *Slider) SetMinValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	s.minValue = v
	if s.maxValue < v {
		s.maxValue = v
	}
	s.InvalidateScale()

	if s.upValue != nil && *s.upValue < v {
		s.SetUpValue(v)
	}
	if s.lowValue == nil || *s.lowValue < v {
		s.SetLowValue(v)
	}
	s.refreshPositions()
}

// SetMaxValue 设置最大值
// 上限未设置或大于新最大值时被推到新最大值（触发 UpValueChanged）；
// 新最大值小于最小值时最小值随之降低
func (s *Slider) SetMaxValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	s.maxValue = v
	if s.minValue > v {
		s.minValue = v
	}
	s.InvalidateScale()

	// 先收回主滑块，保证设置上限时 LowValue ≤ 新最大值
	if s.lowValue != nil && *s.lowValue > v {
		s.SetLowValue(v)
	}
	if s.upValue == nil || *s.upValue > v {
		s.SetUpValue(v)
	}
	s.refreshPositions()
}

// SetStep 设置步长，必须大于 0；非法值被忽略
func (s *Slider) SetStep(v float64) {
	if !(v > 0) || math.IsInf(v, 0) {
		log.Printf("[Slider] Warning: ignoring invalid step %v (keeping %v)", v, s.step)
		return
	}
	s.step = v
}

// raise 触发与滑块对应的通知
func (s *Slider) raise(h Handle, v float64) {
	switch {
	case h == High:
		s.UpValueChanged.Raise(v)
	case s.isRange:
		s.LowValueChanged.Raise(v)
	default:
		s.ValueChanged.Raise(v)
	}
}

// storeValue 保存值（保持 min ≤ low ≤ up ≤ max）并返回实际保存的值
func (s *Slider) storeValue(h Handle, v float64) float64 {
	if h == High {
		v = math.Min(s.maxValue, math.Max(v, s.LowValue()))
		s.upValue = &v
		return v
	}
	upper := s.maxValue
	if s.isRange {
		upper = s.UpValue()
	}
	v = math.Max(s.minValue, math.Min(v, upper))
	s.lowValue = &v
	return v
}
