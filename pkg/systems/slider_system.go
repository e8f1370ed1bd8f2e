package systems

import (
	"log"

	"github.com/decker502/slider/pkg/components"
	"github.com/decker502/slider/pkg/ecs"
	"github.com/decker502/slider/pkg/gesture"
)

// SliderInputSystem 滑动条输入系统
// 负责把指针输入识别为手势并分发给滑动条控件
//
// 职责：
//   - 每帧驱动手势识别器（点击 / 拖动 / 拖动结束）
//   - 按容器的绝对几何命中测试，更新悬停状态
//   - 拖动期间锁定按下时命中的控件，直到拖动结束
//   - 把屏幕坐标转换为控件本地坐标后调用 OnTap / OnPanUpdate / OnPanFinished
type SliderInputSystem struct {
	entityManager *ecs.EntityManager
	input         gesture.PointerInput
	recognizer    *gesture.Recognizer

	// captured 当前拖动锁定的控件，0 表示没有
	captured ecs.EntityID
}

// NewSliderInputSystem 创建使用 Ebitengine 鼠标/触摸输入的滑动条输入系统
func NewSliderInputSystem(em *ecs.EntityManager) *SliderInputSystem {
	return NewSliderInputSystemWithInput(em, gesture.NewEbitenPointerInput())
}

// NewSliderInputSystemWithInput 创建带自定义指针输入的滑动条输入系统（用于测试）
func NewSliderInputSystemWithInput(em *ecs.EntityManager, input gesture.PointerInput) *SliderInputSystem {
	return &SliderInputSystem{
		entityManager: em,
		input:         input,
		recognizer:    gesture.NewRecognizer(input),
	}
}

// Recognizer 返回内部的手势识别器（可调整 TapSlop）
func (s *SliderInputSystem) Recognizer() *gesture.Recognizer {
	return s.recognizer
}

// Captured 返回当前拖动锁定的控件
func (s *SliderInputSystem) Captured() ecs.EntityID {
	return s.captured
}

// Update 更新输入状态并分发手势
func (s *SliderInputSystem) Update(deltaTime float64) {
	events := s.recognizer.Update(deltaTime)

	_, px, py := s.input.Pointer()
	s.updateHover(gesture.Point{X: float64(px), Y: float64(py)})

	for _, e := range events {
		switch e.Kind {
		case gesture.KindTap:
			target := s.hitTest(e.Origin)
			if target == 0 {
				continue
			}
			slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, target)
			local := s.toLocal(target, e.Point)
			slider.Control.OnTap(&local)

		case gesture.KindPanUpdate:
			if s.captured == 0 || !s.entityManager.Exists(s.captured) {
				s.captured = s.hitTest(e.Origin)
				if s.captured == 0 {
					continue
				}
				if Verbose {
					log.Printf("[SliderInputSystem] Captured slider %d at (%.0f, %.0f)", s.captured, e.Origin.X, e.Origin.Y)
				}
			}
			slider, ok := ecs.GetComponent[*components.SliderComponent](s.entityManager, s.captured)
			if !ok {
				s.captured = 0
				continue
			}
			slider.IsDragging = true
			pan := e.Pan
			pan.From = s.toLocal(s.captured, pan.From)
			pan.To = s.toLocal(s.captured, pan.To)
			slider.Control.OnPanUpdate(pan)

		case gesture.KindPanFinished:
			if s.captured == 0 {
				continue
			}
			if slider, ok := ecs.GetComponent[*components.SliderComponent](s.entityManager, s.captured); ok {
				slider.IsDragging = false
				slider.Control.OnPanFinished()
			}
			s.captured = 0
		}
	}
}

// updateHover 更新所有控件的悬停状态
func (s *SliderInputSystem) updateHover(p gesture.Point) {
	for _, id := range ecs.GetEntitiesWith2[*components.SliderComponent, *components.BoxComponent](s.entityManager) {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, id)
		slider.IsHovered = s.contains(id, p)
	}
}

// hitTest 返回包含屏幕坐标 p 的控件，后创建的控件优先；没有命中返回 0
func (s *SliderInputSystem) hitTest(p gesture.Point) ecs.EntityID {
	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.BoxComponent](s.entityManager)
	for i := len(entities) - 1; i >= 0; i-- {
		id := entities[i]
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, id)
		if slider.Control == nil || !isVisible(s.entityManager, id) {
			continue
		}
		if s.contains(id, p) {
			return id
		}
	}
	return 0
}

// contains 屏幕坐标是否在控件的绝对矩形内
func (s *SliderInputSystem) contains(id ecs.EntityID, p gesture.Point) bool {
	box, _ := ecs.GetComponent[*components.BoxComponent](s.entityManager, id)
	x, y := components.AbsolutePosition(s.entityManager, id)
	abs := components.BoxComponent{X: x, Y: y, Width: box.Width, Height: box.Height}
	return abs.Contains(p.X, p.Y)
}

// toLocal 把屏幕坐标转换为控件本地坐标
func (s *SliderInputSystem) toLocal(id ecs.EntityID, p gesture.Point) gesture.Point {
	x, y := components.AbsolutePosition(s.entityManager, id)
	return gesture.Point{X: p.X - x, Y: p.Y - y}
}
