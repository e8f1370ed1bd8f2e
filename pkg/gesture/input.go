package gesture

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput 指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	// Pointer 返回主指针状态：是否按下、位置
	Pointer() (pressed bool, x, y int)
	// Touches 返回当前活动的触点（鼠标按下时为 MouseTouchID）
	Touches() []TouchID
}

// EbitenPointerInput Ebitengine 默认实现
// 同时支持鼠标和触摸，触摸优先；跟踪第一个按下的触点直到它释放
type EbitenPointerInput struct {
	tracked    ebiten.TouchID
	isTracking bool
	lastX      int
	lastY      int
}

// NewEbitenPointerInput 创建 Ebitengine 指针输入
func NewEbitenPointerInput() *EbitenPointerInput {
	return &EbitenPointerInput{tracked: -1}
}

// Pointer 实现 PointerInput
func (e *EbitenPointerInput) Pointer() (bool, int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)

	if e.isTracking && !containsTouch(touchIDs, e.tracked) {
		// 触摸已释放，返回最后一次位置（释放后无法再读取触点坐标）
		e.isTracking = false
		e.tracked = -1
		return false, e.lastX, e.lastY
	}

	if !e.isTracking {
		justPressed := inpututil.AppendJustPressedTouchIDs(nil)
		if len(justPressed) > 0 {
			e.tracked = justPressed[0]
			e.isTracking = true
		} else if len(touchIDs) > 0 {
			e.tracked = touchIDs[0]
			e.isTracking = true
		}
	}

	if e.isTracking {
		e.lastX, e.lastY = ebiten.TouchPosition(e.tracked)
		return true, e.lastX, e.lastY
	}

	x, y := ebiten.CursorPosition()
	e.lastX, e.lastY = x, y
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y
}

// Touches 实现 PointerInput
func (e *EbitenPointerInput) Touches() []TouchID {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) == 0 {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			return []TouchID{MouseTouchID}
		}
		return nil
	}
	result := make([]TouchID, 0, len(touchIDs))
	for _, id := range touchIDs {
		result = append(result, TouchID(id))
	}
	return result
}

func containsTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
