package slider

import (
	"math"

	"github.com/decker502/slider/pkg/components"
	"github.com/decker502/slider/pkg/ecs"
	"github.com/decker502/slider/pkg/utils"
)

// moveMode 控制 moveElements 的交叉处理
type moveMode int

const (
	// moveInteractive 交互移动：越过另一个滑块时改为移动另一个滑块
	moveInteractive moveMode = iota
	// moveRedirected 已经改向过一次，不再检查交叉
	moveRedirected
	// movePlace 按已排好序的值定位，不检查交叉
	movePlace
)

// loadValue 把值装入滑块：设为活动滑块、更新标题、保存值、触发通知，
// 最后把滑块和标题移动到 ValueToPoint(value)
// 范围模式下值越过另一个滑块时改为装入另一个滑块
func (s *Slider) loadValue(h Handle, value float64) {
	if s.isRange {
		if h == Low && value > s.UpValue() {
			h = High
		} else if h == High && value < s.LowValue() {
			h = Low
		}
	}
	s.active = h
	value = s.storeValue(h, value)
	s.setCaption(h, value)
	s.raise(h, value)
	s.moveElements(h, s.ValueToPoint(value), &value, moveInteractive)
}

// positionValue 只做定位，不保存值也不触发通知（值已由调用方保存）
func (s *Slider) positionValue(h Handle, value float64) {
	s.active = h
	s.moveElements(h, s.ValueToPoint(value), &value, movePlace)
}

// refreshPositions 按保存的值重新定位所有滑块（值或布局变化后调用），不触发通知
// 保存的值满足 low ≤ up，所以两个滑块直接定位，不做交叉处理
func (s *Slider) refreshPositions() {
	if !s.IsRendered() {
		return
	}
	active := s.active
	if s.isRange {
		s.positionValue(High, s.UpValue())
	}
	s.positionValue(Low, s.LowValue())
	s.active = active
}

// moveElements 把滑块 h 的中心移动到 point（容器本地坐标），并同步标题和选中条
//
// 范围模式下两个滑块不能交叉：主滑块越过上限滑块时改为移动上限滑块，反之亦然，
// 此时"哪个是下限/上限"随位置交换，而不是随元素交换。
// value 为 nil 时标题文本由最终位置换算得到（拖动过程）。
// 返回实际移动的滑块和最终中心位置。
func (s *Slider) moveElements(h Handle, point float64, value *float64, mode moveMode) (Handle, float64) {
	p := s.parts(h)
	hb := s.box(p.handle)
	pad := s.padding()
	track := s.box(s.rangeBar)

	point = utils.Clamp(point, hb.Width/2-pad.Left, track.Width+pad.Left-hb.Width/2)

	if s.isRange && mode == moveInteractive {
		lowBox, highBox := s.box(s.handle), s.box(s.upHandle)
		if h == Low && point > s.targetX(s.upHandle)+lowBox.Width/2 {
			return s.moveElements(High, point, value, moveRedirected)
		}
		if h == High && point < s.targetX(s.handle)+highBox.Width/2 {
			return s.moveElements(Low, point, value, moveRedirected)
		}
	}

	s.active = h

	handleX := point - hb.Width/2
	if s.isRange && mode != movePlace {
		// 宽度不同的两个滑块也不能交叉
		if h == Low {
			handleX = math.Min(handleX, s.targetX(s.upHandle))
		} else {
			handleX = math.Max(handleX, s.targetX(s.handle))
		}
	}

	// 标题文本和宽度
	text := ""
	if value != nil {
		text = s.captionText(*value)
	} else {
		text = s.captionText(s.PointToValue(point))
	}
	cb := s.box(p.caption)
	if t, ok := ecs.GetComponent[*components.TextComponent](s.em, p.caption); ok {
		t.Text = text
		if w := t.EstimateWidth(); w > 0 {
			cb.Width = w
		}
	}

	captionX := point - cb.Width/2
	captionX = math.Min(captionX, s.box(s.container).Width-cb.Width)
	captionX = math.Max(captionX, 0)

	s.setOrAnimate(p.handle, components.PropX, handleX)
	s.setOrAnimate(p.caption, components.PropX, captionX)

	if h == Low {
		s.syncSelectedBar(handleX, s.targetX(s.upHandle))
	} else {
		s.syncSelectedBar(s.targetX(s.handle), handleX)
	}

	return h, point
}

// syncSelectedBar 根据两个滑块的左上角 X 更新选中条
// 单值模式：从左内边距到主滑块中点；范围模式：从主滑块中点到上限滑块中点；宽度不为负
func (s *Slider) syncSelectedBar(handleX, upHandleX float64) {
	pad := s.padding()
	lowMid := handleX + s.box(s.handle).Width/2

	midHandle := math.Max(lowMid-pad.Left, 0)
	newX := pad.Left
	newWidth := midHandle

	if s.isRange {
		newX = midHandle + pad.Left
		upMid := upHandleX + s.box(s.upHandle).Width/2
		newWidth = math.Max(upMid-newX, 0)
	}

	s.setOrAnimate(s.selectedBar, components.PropX, newX)
	s.setOrAnimate(s.selectedBar, components.PropWidth, newWidth)
}

// setCaption 用格式化函数更新标题文本
func (s *Slider) setCaption(h Handle, value float64) {
	if t, ok := ecs.GetComponent[*components.TextComponent](s.em, s.parts(h).caption); ok {
		t.Text = s.captionText(value)
	}
}

// animating 当前写入是否应通过补间动画
func (s *Slider) animating() bool {
	return s.isAnimating && s.animation.Duration > 0
}

// setOrAnimate 动画中通过 TweenComponent 过渡到目标值，否则立即写入
// 立即写入会取消同一属性上尚未完成的过渡，保证以最新值为准
func (s *Slider) setOrAnimate(id ecs.EntityID, prop components.BoxProperty, v float64) {
	box := s.box(id)
	tc, hasTween := ecs.GetComponent[*components.TweenComponent](s.em, id)

	if s.animating() {
		if !hasTween {
			tc = components.NewTweenComponent()
			ecs.AddComponent(s.em, id, tc)
		}
		tc.Start(prop, box.Get(prop), v, s.animation.Duration, s.animation.Easing)
		return
	}

	if hasTween {
		delete(tc.Tracks, prop)
	}
	box.Set(prop, v)
}

// targetX 元素的目标 X：有进行中的过渡时取过渡目标，否则取实际位置
func (s *Slider) targetX(id ecs.EntityID) float64 {
	if tc, ok := ecs.GetComponent[*components.TweenComponent](s.em, id); ok {
		if to, ok := tc.Target(components.PropX); ok {
			return to
		}
	}
	return s.box(id).X
}

// handleCenter 滑块中心的目标位置
func (s *Slider) handleCenter(h Handle) float64 {
	id := s.parts(h).handle
	return s.targetX(id) + s.box(id).Width/2
}
