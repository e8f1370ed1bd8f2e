package slider

import (
	"log"
	"math"

	"github.com/decker502/slider/pkg/gesture"
	"github.com/decker502/slider/pkg/utils"
)

// Verbose 为 true 时输出每次手势处理的调试日志
var Verbose = false

// OnTap 处理点击（p 为容器本地坐标）
// 动画进行中或 p 为 nil（没有拖动记录的 pan-finished 重放）时忽略。
// 范围模式下比较点击位置到两个滑块中心的距离：到主滑块更远时移动上限滑块。
func (s *Slider) OnTap(p *gesture.Point) {
	if s.isAnimating || p == nil || s.disposed {
		return
	}

	s.isAnimating = true
	defer func() { s.isAnimating = false }()

	s.active = Low
	if s.isRange {
		dLow := math.Abs(s.handleCenter(Low) - p.X)
		dHigh := math.Abs(s.handleCenter(High) - p.X)
		if dLow > dHigh {
			s.active = High
		}
	}

	value := s.PointToValue(p.X)
	if Verbose {
		log.Printf("[Slider] Tap at %.1f -> %s handle, value %v", p.X, s.active, value)
	}
	s.loadValue(s.active, value)
}

// OnPanUpdate 处理一次拖动更新
// 拖动会打断进行中的点击动画；水平速度为 0 的更新被忽略；
// 处理过程中重入的更新直接丢弃（不排队），由 pan-finished 的重放修正最终值。
func (s *Slider) OnPanUpdate(e gesture.PanEvent) {
	s.isAnimating = false
	if s.disposed || e.Velocity.X == 0 {
		return
	}

	start, end := e.From, e.To
	trackX := s.box(s.rangeBar).X
	trackW := s.box(s.rangeBar).Width
	halfW := s.box(s.handle).Width / 2
	end.X = utils.Clamp(end.X, trackX+halfW, trackX+trackW-halfW)

	last := end
	s.lastPanEnd = &last

	if s.isProcessingPan {
		return
	}
	s.isProcessingPan = true
	defer func() { s.isProcessingPan = false }()

	s.active = Low
	if s.isRange {
		dLow := math.Abs(s.handleCenter(Low) - start.X)
		dHigh := math.Abs(s.handleCenter(High) - start.X)
		if (math.Abs(dLow-dHigh) <= panTieEpsilon && start.X < end.X) || dLow > dHigh {
			s.active = High
		}
	}

	moved, point := s.moveElements(s.active, end.X, nil, moveInteractive)
	if Verbose {
		log.Printf("[Slider] Pan %.1f -> %.1f moved %s handle to %.1f", start.X, end.X, moved, point)
	}
}

// OnPanFinished 拖动结束：把最后一次拖动位置作为点击重放，使值吸附到步长并保存
func (s *Slider) OnPanFinished() {
	p := s.lastPanEnd
	s.OnTap(p)
	s.lastPanEnd = nil
}

// LastPanEnd 返回最近一次拖动的终点（没有时为 nil）
func (s *Slider) LastPanEnd() *gesture.Point {
	return s.lastPanEnd
}

// IsProcessingPan 是否正在处理拖动更新
func (s *Slider) IsProcessingPan() bool {
	return s.isProcessingPan
}

// IsAnimating 点击动画保护标志
func (s *Slider) IsAnimating() bool {
	return s.isAnimating
}
