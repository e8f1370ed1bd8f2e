package components

import "github.com/decker502/slider/pkg/gesture"

// GestureTarget 接收手势事件的控件（坐标为控件本地坐标）
type GestureTarget interface {
	OnTap(p *gesture.Point)
	OnPanUpdate(e gesture.PanEvent)
	OnPanFinished()
}

// SliderComponent 标记滑动条容器实体
// 输入系统按它做命中测试并把手势转发给 Control
type SliderComponent struct {
	Control GestureTarget

	// 状态
	IsDragging bool // 是否正在拖动（从按下到释放期间捕获手势）
	IsHovered  bool // 指针是否在控件区域内
}
