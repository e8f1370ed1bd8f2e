package utils

import "math"

// EasingFunc 缓动函数：输入线性进度 t ∈ [0, 1]，返回缓动后的进度
type EasingFunc func(t float64) float64

// 缓动名称（配置文件和 TweenComponent.Easing 使用）
const (
	EasingLinear    = "linear"
	EasingEaseOut   = "easeOut"
	EasingEaseIn    = "easeIn"
	EasingEaseInOut = "easeInOut"
	EasingOutQuad   = "easeOutQuad"
)

// DefaultEasing 未指定缓动时使用的名称
const DefaultEasing = EasingEaseOut

var easings = map[string]EasingFunc{
	EasingLinear:    EaseLinear,
	EasingEaseOut:   EaseOutCubic,
	EasingEaseIn:    EaseInCubic,
	EasingEaseInOut: EaseInOutCubic,
	EasingOutQuad:   EaseOutQuad,
}

// GetEasing 按名称查找缓动函数
// 空名称返回默认缓动；未知名称返回 (EaseLinear, false)
func GetEasing(name string) (EasingFunc, bool) {
	if name == "" {
		name = DefaultEasing
	}
	fn, ok := easings[name]
	if !ok {
		return EaseLinear, false
	}
	return fn, true
}

// IsKnownEasing 名称是否已注册（空名称视为默认值）
func IsKnownEasing(name string) bool {
	_, ok := GetEasing(name)
	return ok
}

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 把 v 限制在 [lo, hi]；lo > hi 时返回 lo
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
