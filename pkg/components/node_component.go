package components

import "github.com/decker502/slider/pkg/ecs"

// NodeComponent 视图树节点
// 记录父子关系和显示状态；渲染、命中测试按这棵树遍历
type NodeComponent struct {
	// Name 元素标识（如 "RangeBar"、"Handle"）
	Name string
	// Parent 父节点，0 表示根节点
	Parent ecs.EntityID
	// Children 子节点（按插入顺序，后插入的绘制在上层）
	Children []ecs.EntityID
	// Visible 是否可见
	Visible bool
	// Shown 是否已完成首次显示（OnShown 已触发）
	Shown bool
	// OnShown 首次显示时执行的回调
	OnShown []func()
}

// NewNode 创建一个可见节点
func NewNode(name string) *NodeComponent {
	return &NodeComponent{Name: name, Visible: true}
}

// AppendChild 把 child 挂到 parent 下
// 两个实体都必须已经拥有 NodeComponent
func AppendChild(em *ecs.EntityManager, parent, child ecs.EntityID) bool {
	parentNode, ok := ecs.GetComponent[*NodeComponent](em, parent)
	if !ok {
		return false
	}
	childNode, ok := ecs.GetComponent[*NodeComponent](em, child)
	if !ok {
		return false
	}
	if childNode.Parent == parent {
		return true
	}
	childNode.Parent = parent
	parentNode.Children = append(parentNode.Children, child)
	return true
}

// WhenShown 在节点首次显示时执行 fn；已显示则立即执行
func (n *NodeComponent) WhenShown(fn func()) {
	if n.Shown {
		fn()
		return
	}
	n.OnShown = append(n.OnShown, fn)
}

// MarkShown 标记为已显示并依次执行挂起的回调，返回是否是首次显示
func (n *NodeComponent) MarkShown() bool {
	if n.Shown {
		return false
	}
	n.Shown = true
	pending := n.OnShown
	n.OnShown = nil
	for _, fn := range pending {
		fn()
	}
	return true
}

// AbsolutePosition 累加祖先节点的偏移，返回实体左上角的绝对坐标
func AbsolutePosition(em *ecs.EntityManager, id ecs.EntityID) (x, y float64) {
	for id != 0 {
		if box, ok := ecs.GetComponent[*BoxComponent](em, id); ok {
			x += box.X
			y += box.Y
		}
		node, ok := ecs.GetComponent[*NodeComponent](em, id)
		if !ok {
			break
		}
		id = node.Parent
	}
	return x, y
}
