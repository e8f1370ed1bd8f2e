package slider

import "github.com/decker502/slider/pkg/ecs"

// Handle 滑块标识：Low 为主滑块，High 仅在范围模式下使用
type Handle int

const (
	// Low 主滑块（单值模式下唯一的滑块）
	Low Handle = iota
	// High 范围模式下的上限滑块
	High
)

func (h Handle) String() string {
	if h == High {
		return "high"
	}
	return "low"
}

// Other 返回另一个滑块
func (h Handle) Other() Handle {
	if h == High {
		return Low
	}
	return High
}

// handleParts 一个滑块对应的元素
type handleParts struct {
	handle  ecs.EntityID
	caption ecs.EntityID
}

func (s *Slider) parts(h Handle) handleParts {
	if h == High {
		return handleParts{handle: s.upHandle, caption: s.upCaption}
	}
	return handleParts{handle: s.handle, caption: s.caption}
}
