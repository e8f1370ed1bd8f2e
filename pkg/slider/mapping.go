package slider

import (
	"math"
	"strconv"
	"strings"
)

// getPixelsPerStep 返回每单位值对应的像素数
// (滑轨宽度 - 滑块宽度) / (最大值 - 最小值)，结果会被缓存；
// 滑轨或滑块宽度变化时缓存自动失效。
// 取值范围退化（max == min）或滑轨窄于滑块时返回 0，所有位置都映射到最小值。
func (s *Slider) getPixelsPerStep() float64 {
	trackW := s.box(s.rangeBar).Width
	handleW := s.box(s.handle).Width

	if s.pixelsPerStep != nil && s.scaleTrackW == trackW && s.scaleHandleW == handleW {
		return *s.pixelsPerStep
	}

	pps := 0.0
	if span := s.maxValue - s.minValue; span > 0 {
		pps = (trackW - handleW) / span
		if pps < 0 {
			pps = 0
		}
	}
	s.pixelsPerStep = &pps
	s.scaleTrackW = trackW
	s.scaleHandleW = handleW
	return pps
}

// InvalidateScale 清除像素比例缓存（取值范围或布局变化后调用）
func (s *Slider) InvalidateScale() {
	s.pixelsPerStep = nil
}

// ValueToPoint 把值换算为滑块中心的像素位置（容器本地坐标，四舍五入到整像素）
func (s *Slider) ValueToPoint(value float64) float64 {
	result := math.Round((value - s.minValue) * s.getPixelsPerStep())
	result += s.box(s.rangeBar).X
	result += s.box(s.parts(s.active).handle).Width / 2
	return result
}

// PointToValue 把像素位置换算为值，并吸附到最近的步长刻度
func (s *Slider) PointToValue(point float64) float64 {
	pps := s.getPixelsPerStep()
	if pps == 0 {
		return s.minValue
	}

	point -= s.box(s.rangeBar).X
	point -= s.box(s.parts(s.active).handle).Width / 2
	amount := point/pps + s.minValue

	return s.snap(amount)
}

// snap 返回 min, min+step, min+2·step, … ≤ max 中离 amount 最近的刻度，距离相同时取较小的刻度
// 直接由 (amount-min)/step 定位，只比较相邻的几个刻度
func (s *Slider) snap(amount float64) float64 {
	last := math.Floor((s.maxValue-s.minValue)/s.step + 1e-9)
	i := math.Floor((amount - s.minValue) / s.step)
	i = math.Max(0, math.Min(i, last))

	digits := stepDigits(s.step, s.minValue)
	result := s.minValue
	smallestDiff := math.MaxFloat64
	for _, k := range [...]float64{i - 1, i, i + 1} {
		if k < 0 || k > last {
			continue
		}
		value := s.stepValue(k, digits)
		if diff := math.Abs(value - amount); diff < smallestDiff {
			smallestDiff = diff
			result = value
		}
	}
	return result
}

// stepValue 第 k 个刻度，按步长的小数位数取整，不超过最大值
func (s *Slider) stepValue(k float64, digits int) float64 {
	value := s.minValue + k*s.step
	if digits >= 0 {
		if rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', digits, 64), 64); err == nil {
			value = rounded
		}
	}
	return math.Min(value, s.maxValue)
}

// stepDigits 刻度需要的小数位数（步长和最小值中较多的一个）；无法用有限小数表示时返回 -1
func stepDigits(values ...float64) int {
	digits := 0
	for _, v := range values {
		text := strconv.FormatFloat(v, 'f', -1, 64)
		_, frac, ok := strings.Cut(text, ".")
		if !ok {
			continue
		}
		if len(frac) > 15 {
			return -1
		}
		digits = max(digits, len(frac))
	}
	return digits
}
