package components

// BoxProperty 可写入/可动画的几何属性
type BoxProperty int

const (
	// PropX 相对父节点的 X 坐标
	PropX BoxProperty = iota
	// PropY 相对父节点的 Y 坐标
	PropY
	// PropWidth 宽度
	PropWidth
	// PropHeight 高度
	PropHeight
)

func (p BoxProperty) String() string {
	switch p {
	case PropX:
		return "x"
	case PropY:
		return "y"
	case PropWidth:
		return "width"
	case PropHeight:
		return "height"
	default:
		return "unknown"
	}
}

// BoxComponent 可视元素的实际几何（像素，相对父节点）
// 布局系统和补间系统写入它，控件逻辑从这里读取实际位置和尺寸
type BoxComponent struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Get 读取指定属性
func (b *BoxComponent) Get(p BoxProperty) float64 {
	switch p {
	case PropX:
		return b.X
	case PropY:
		return b.Y
	case PropWidth:
		return b.Width
	case PropHeight:
		return b.Height
	}
	return 0
}

// Set 写入指定属性
func (b *BoxComponent) Set(p BoxProperty, v float64) {
	switch p {
	case PropX:
		b.X = v
	case PropY:
		b.Y = v
	case PropWidth:
		b.Width = v
	case PropHeight:
		b.Height = v
	}
}

// CenterX 水平中心
func (b *BoxComponent) CenterX() float64 {
	return b.X + b.Width/2
}

// Contains 判断点 (x, y) 是否在盒子内（坐标与盒子同一空间）
func (b *BoxComponent) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// PaddingComponent 容器内边距
type PaddingComponent struct {
	Left, Top, Right, Bottom float64
}
