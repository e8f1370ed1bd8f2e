// Package slider 实现可拖动的滑动条 / 范围滑动条控件
//
// 控件由六个可视元素组成（滑轨、选中条、两个滑块、两个标题），每个元素
// 都是 ECS 实体，几何信息保存在 components.BoxComponent 中。控件负责：
//   - 值与像素位置之间的换算（按步长吸附）
//   - 根据点击 / 拖动手势决定移动哪个滑块，并处理两个滑块交叉
//   - 把值状态同步到滑块、标题和选中条（直接写入或通过补间动画）
//   - 值变化通知（ValueChanged / LowValueChanged / UpValueChanged）
//
// 所有方法都必须在同一个 UI 线程（ebiten 的 Update）上调用。
package slider

import (
	"image/color"
	"log"

	"github.com/decker502/slider/pkg/components"
	"github.com/decker502/slider/pkg/ecs"
	"github.com/decker502/slider/pkg/gesture"
	"github.com/decker502/slider/pkg/utils"
)

// 元素标识
const (
	NameSlider      = "Slider"
	NameRangeBar    = "RangeBar"
	NameSelectedBar = "SelectedBar"
	NameHandle      = "Handle"
	NameUpHandle    = "UpHandle"
	NameCaption     = "Caption"
	NameUpCaption   = "UpCaption"
)

// 默认取值范围
const (
	DefaultMinValue = 0.0
	DefaultMaxValue = 100.0
	DefaultStep     = 1.0
)

// panTieEpsilon 拖动起点到两个滑块中心的距离相差不超过它时视为相等（像素）
const panTieEpsilon = 1.0

// Geometry 元素尺寸（像素）
type Geometry struct {
	BarHeight     float64
	HandleWidth   float64
	HandleHeight  float64
	CaptionWidth  float64
	CaptionHeight float64
	FontSize      float64
}

// DefaultGeometry 默认元素尺寸
var DefaultGeometry = Geometry{
	BarHeight:     4,
	HandleWidth:   16,
	HandleHeight:  16,
	CaptionWidth:  30,
	CaptionHeight: 12,
	FontSize:      components.DefaultFontSize,
}

// Animation 动画参数；Duration <= 0 表示不使用动画
type Animation struct {
	Duration float64 // 秒
	Easing   string  // 见 utils.GetEasing
}

// Palette 元素填充颜色
type Palette struct {
	Bar      color.RGBA
	Selected color.RGBA
	Handle   color.RGBA
}

// DefaultPalette 默认颜色
var DefaultPalette = Palette{
	Bar:      color.RGBA{R: 90, G: 90, B: 90, A: 255},
	Selected: color.RGBA{R: 60, G: 160, B: 90, A: 255},
	Handle:   color.RGBA{R: 230, G: 230, B: 230, A: 255},
}

// Slider 滑动条控件
type Slider struct {
	em *ecs.EntityManager

	// 元素实体
	container   ecs.EntityID
	rangeBar    ecs.EntityID
	selectedBar ecs.EntityID
	handle      ecs.EntityID
	upHandle    ecs.EntityID
	caption     ecs.EntityID
	upCaption   ecs.EntityID

	// 值状态
	lowValue *float64
	upValue  *float64
	minValue float64
	maxValue float64
	step     float64
	isRange  bool

	// 像素比例缓存，以及计算它时的滑轨/滑块宽度
	pixelsPerStep *float64
	scaleTrackW   float64
	scaleHandleW  float64

	// 交互状态
	active          Handle
	isProcessingPan bool
	isAnimating     bool
	lastPanEnd      *gesture.Point

	captionText CaptionFormatter
	animation   Animation

	initialized bool
	disposed    bool

	// 值变化通知
	ValueChanged    *Event // 单值模式
	LowValueChanged *Event // 范围模式，下限
	UpValueChanged  *Event // 上限
}

// New 创建滑动条并创建其元素实体
// isRange 只能在创建时指定
func New(em *ecs.EntityManager, isRange bool) *Slider {
	s := &Slider{
		em:              em,
		minValue:        DefaultMinValue,
		maxValue:        DefaultMaxValue,
		step:            DefaultStep,
		isRange:         isRange,
		active:          Low,
		captionText:     PlainFormatter,
		ValueChanged:    &Event{},
		LowValueChanged: &Event{},
		UpValueChanged:  &Event{},
	}

	s.container = s.newElement(NameSlider, components.BoxComponent{})
	ecs.AddComponent(em, s.container, &components.PaddingComponent{})
	ecs.AddComponent(em, s.container, &components.SliderComponent{Control: s})

	g := DefaultGeometry
	s.rangeBar = s.newElement(NameRangeBar, components.BoxComponent{Height: g.BarHeight})
	s.selectedBar = s.newElement(NameSelectedBar, components.BoxComponent{Height: g.BarHeight})
	s.handle = s.newElement(NameHandle, components.BoxComponent{Width: g.HandleWidth, Height: g.HandleHeight})
	s.upHandle = s.newElement(NameUpHandle, components.BoxComponent{Width: g.HandleWidth, Height: g.HandleHeight})
	s.caption = s.newTextElement(NameCaption, g)
	s.upCaption = s.newTextElement(NameUpCaption, g)

	s.SetPalette(DefaultPalette)
	return s
}

func (s *Slider) newElement(name string, box components.BoxComponent) ecs.EntityID {
	id := s.em.CreateEntity()
	ecs.AddComponent(s.em, id, components.NewNode(name))
	b := box
	ecs.AddComponent(s.em, id, &b)
	return id
}

func (s *Slider) newTextElement(name string, g Geometry) ecs.EntityID {
	id := s.newElement(name, components.BoxComponent{Width: g.CaptionWidth, Height: g.CaptionHeight})
	ecs.AddComponent(s.em, id, &components.TextComponent{FontSize: g.FontSize})
	return id
}

// Initialize 把元素插入视图树，并在控件首次显示时建立布局绑定
// 上限滑块和上限标题只在范围模式下插入
func (s *Slider) Initialize() {
	if s.initialized || s.disposed {
		return
	}
	s.initialized = true

	children := []ecs.EntityID{s.rangeBar, s.selectedBar, s.handle, s.caption}
	if s.isRange {
		children = append(children, s.upHandle, s.upCaption)
	}
	for _, child := range children {
		components.AppendChild(s.em, s.container, child)
	}

	if node, ok := ecs.GetComponent[*components.NodeComponent](s.em, s.container); ok {
		node.WhenShown(s.rearrangeElements)
	}
}

// Show 标记控件已显示（通常由 LayoutSystem 调用），触发首次布局
func (s *Slider) Show() {
	s.Initialize()
	if node, ok := ecs.GetComponent[*components.NodeComponent](s.em, s.container); ok {
		node.MarkShown()
	}
}

// IsRendered 控件是否已插入视图树并完成首次布局
func (s *Slider) IsRendered() bool {
	if !s.initialized || s.disposed {
		return false
	}
	node, ok := ecs.GetComponent[*components.NodeComponent](s.em, s.container)
	return ok && node.Shown
}

// Dispose 先释放三个通知通道，再销毁元素实体
func (s *Slider) Dispose() {
	if s.disposed {
		return
	}
	s.ValueChanged.Dispose()
	s.LowValueChanged.Dispose()
	s.UpValueChanged.Dispose()

	if node, ok := ecs.GetComponent[*components.NodeComponent](s.em, s.container); ok && node.Parent != 0 {
		if parent, ok := ecs.GetComponent[*components.NodeComponent](s.em, node.Parent); ok {
			kept := parent.Children[:0]
			for _, c := range parent.Children {
				if c != s.container {
					kept = append(kept, c)
				}
			}
			parent.Children = kept
		}
	}

	for _, id := range []ecs.EntityID{s.rangeBar, s.selectedBar, s.handle, s.upHandle, s.caption, s.upCaption, s.container} {
		s.em.DestroyEntity(id)
	}
	s.disposed = true
	log.Printf("[Slider] Disposed slider (entity %d)", s.container)
}

// Entity 返回容器实体
func (s *Slider) Entity() ecs.EntityID { return s.container }

// RangeBar 返回滑轨实体
func (s *Slider) RangeBar() ecs.EntityID { return s.rangeBar }

// SelectedBar 返回选中条实体
func (s *Slider) SelectedBar() ecs.EntityID { return s.selectedBar }

// HandleEntity 返回滑块实体
func (s *Slider) HandleEntity(h Handle) ecs.EntityID { return s.parts(h).handle }

// CaptionEntity 返回标题实体
func (s *Slider) CaptionEntity(h Handle) ecs.EntityID { return s.parts(h).caption }

// IsRange 是否为范围模式
func (s *Slider) IsRange() bool { return s.isRange }

// ActiveHandle 返回当前交互的目标滑块
func (s *Slider) ActiveHandle() Handle { return s.active }

// CaptionText 返回滑块标题的当前文本
func (s *Slider) CaptionText(h Handle) string {
	if t, ok := ecs.GetComponent[*components.TextComponent](s.em, s.parts(h).caption); ok {
		return t.Text
	}
	return ""
}

// SetBounds 设置容器位置和尺寸（相对父节点）
func (s *Slider) SetBounds(x, y, width, height float64) {
	box := s.box(s.container)
	box.X, box.Y, box.Width, box.Height = x, y, width, height
}

// SetPadding 设置容器内边距
func (s *Slider) SetPadding(left, top, right, bottom float64) {
	if p, ok := ecs.GetComponent[*components.PaddingComponent](s.em, s.container); ok {
		p.Left, p.Top, p.Right, p.Bottom = left, top, right, bottom
	}
}

// SetGeometry 设置元素尺寸
func (s *Slider) SetGeometry(g Geometry) {
	s.box(s.rangeBar).Height = g.BarHeight
	s.box(s.selectedBar).Height = g.BarHeight
	for _, id := range []ecs.EntityID{s.handle, s.upHandle} {
		b := s.box(id)
		b.Width, b.Height = g.HandleWidth, g.HandleHeight
	}
	for _, id := range []ecs.EntityID{s.caption, s.upCaption} {
		b := s.box(id)
		b.Width, b.Height = g.CaptionWidth, g.CaptionHeight
		if t, ok := ecs.GetComponent[*components.TextComponent](s.em, id); ok {
			t.FontSize = g.FontSize
		}
	}
	s.InvalidateScale()
}

// SetPalette 设置元素颜色
func (s *Slider) SetPalette(p Palette) {
	ecs.AddComponent(s.em, s.rangeBar, &components.FillComponent{Color: p.Bar})
	ecs.AddComponent(s.em, s.selectedBar, &components.FillComponent{Color: p.Selected})
	ecs.AddComponent(s.em, s.handle, &components.FillComponent{Color: p.Handle})
	ecs.AddComponent(s.em, s.upHandle, &components.FillComponent{Color: p.Handle})
}

// SetCaptionText 设置值到标题文本的格式化函数，nil 恢复默认
func (s *Slider) SetCaptionText(f CaptionFormatter) {
	if f == nil {
		f = PlainFormatter
	}
	s.captionText = f
}

// SetAnimation 设置点击时使用的动画参数
func (s *Slider) SetAnimation(a Animation) {
	if a.Easing != "" && !utils.IsKnownEasing(a.Easing) {
		log.Printf("[Slider] Warning: unknown easing %q, falling back to %s", a.Easing, utils.DefaultEasing)
		a.Easing = utils.DefaultEasing
	}
	s.animation = a
}

// box 返回元素的几何组件；实体缺失时返回一个临时零值，避免空指针
func (s *Slider) box(id ecs.EntityID) *components.BoxComponent {
	if b, ok := ecs.GetComponent[*components.BoxComponent](s.em, id); ok {
		return b
	}
	return &components.BoxComponent{}
}

func (s *Slider) padding() components.PaddingComponent {
	if p, ok := ecs.GetComponent[*components.PaddingComponent](s.em, s.container); ok {
		return *p
	}
	return components.PaddingComponent{}
}
