package slider

import (
	"log"
	"math"

	"github.com/decker502/slider/pkg/components"
	"github.com/decker502/slider/pkg/ecs"
)

// rearrangeElements 首次显示时建立布局绑定并按当前值定位滑块
//
// 滑轨垂直居中在较高的滑块上，选中条跟随滑轨，滑块中心对齐滑轨，标题在滑块上方。
// 绑定由 LayoutSystem 每帧求值；求值结果变化时重新定位滑块（不触发值变化通知）。
func (s *Slider) rearrangeElements() {
	lb, ok := ecs.GetComponent[*components.LayoutBindingComponent](s.em, s.container)
	if !ok {
		lb = &components.LayoutBindingComponent{}
		ecs.AddComponent(s.em, s.container, lb)
	}

	container := s.box(s.container)
	bar := s.box(s.rangeBar)

	lb.Bind(s.rangeBar, components.PropX, func() float64 {
		return s.padding().Left
	})
	lb.Bind(s.rangeBar, components.PropWidth, func() float64 {
		pad := s.padding()
		return math.Max(container.Width-pad.Left-pad.Right, 0)
	})
	lb.Bind(s.rangeBar, components.PropY, func() float64 {
		h := math.Max(s.box(s.handle).Height, s.box(s.upHandle).Height)
		return container.Height - h/2 - bar.Height/2 - s.padding().Top
	})

	lb.Bind(s.selectedBar, components.PropY, func() float64 { return bar.Y })
	lb.Bind(s.selectedBar, components.PropHeight, func() float64 { return bar.Height })

	for _, h := range []Handle{Low, High} {
		p := s.parts(h)
		handle := s.box(p.handle)
		caption := s.box(p.caption)
		lb.Bind(p.handle, components.PropY, func() float64 {
			return bar.Y - (handle.Height-bar.Height)/2
		})
		lb.Bind(p.caption, components.PropY, func() float64 {
			return handle.Y - caption.Height
		})
	}

	lb.Evaluate(s.em)
	lb.OnChanged = s.refreshPositions

	s.refreshPositions()
	log.Printf("[Slider] Arranged slider (entity %d): track x=%.0f w=%.0f, low=%v up=%v",
		s.container, bar.X, bar.Width, s.LowValue(), s.UpValue())
}
