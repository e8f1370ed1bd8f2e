// Package gesture 把逐帧的指针采样（鼠标或触摸）识别为点击和拖动手势
//
// 识别结果是离散事件：Tap（一个点）、PanUpdate（起点、终点、速度、活动触点）
// 和 PanFinished（无坐标）。控件只消费这些事件，不关心原始输入来自哪里。
package gesture

import "math"

// Point 二维坐标点（像素）
type Point struct {
	X, Y float64
}

// Sub 返回 p - o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Distance 返回两点间的欧氏距离
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// TouchID 触点标识，鼠标使用 MouseTouchID
type TouchID int

// MouseTouchID 鼠标输入使用的虚拟触点 ID
const MouseTouchID TouchID = -1

// PanEvent 一次拖动更新
type PanEvent struct {
	// From 本次更新的起点（首次更新为按下位置，之后为上一帧位置）
	From Point
	// To 本次更新的终点（当前指针位置）
	To Point
	// Velocity 指针速度（像素/秒）
	Velocity Point
	// Touches 当前活动的触点
	Touches []TouchID
}

// Kind 手势事件类型
type Kind int

const (
	// KindTap 点击（按下后在容差范围内释放）
	KindTap Kind = iota
	// KindPanUpdate 拖动中的一次位置更新
	KindPanUpdate
	// KindPanFinished 拖动结束
	KindPanFinished
)

func (k Kind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindPanUpdate:
		return "pan"
	case KindPanFinished:
		return "pan-finished"
	default:
		return "unknown"
	}
}

// Event 识别器产出的手势事件
type Event struct {
	Kind Kind
	// Point 点击位置（KindTap）
	Point Point
	// Pan 拖动数据（KindPanUpdate）
	Pan PanEvent
	// Origin 本次手势的按下位置，用于命中测试
	Origin Point
}
