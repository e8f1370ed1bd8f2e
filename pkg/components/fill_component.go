package components

import "image/color"

// FillComponent 纯色填充（滑轨、选中条、滑块）
type FillComponent struct {
	Color color.RGBA
}
