package slider

import (
	"strconv"
	"strings"
)

// ControlValue 表单绑定使用的字符串值（单值 / 主滑块的值）
func (s *Slider) ControlValue() string {
	return strconv.FormatFloat(s.Value(), 'f', -1, 64)
}

// SetControlValue 从表单写入字符串值，无法解析时按 0 处理
// 与 SetValue 相同，范围模式下上限被重置为最大值
func (s *Slider) SetControlValue(text string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		v = 0
	}
	s.SetValue(v)
}
