package components

import "unicode/utf8"

// DefaultFontSize 默认字号（像素）
const DefaultFontSize = 6.0

// TextComponent 文本元素（滑块标题）
type TextComponent struct {
	Text     string
	FontSize float64 // 字号，用于估算文本宽度
}

// EstimateWidth 按 "字符数 × 字号" 估算文本宽度
func (t *TextComponent) EstimateWidth() float64 {
	size := t.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	return float64(utf8.RuneCountInString(t.Text)) * size
}
