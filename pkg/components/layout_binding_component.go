package components

import "github.com/decker502/slider/pkg/ecs"

// Binding 一条声明式布局绑定：Target 的 Property = Compute()
// Compute 读取其它元素的实际几何，输入变化后由布局系统重新求值
type Binding struct {
	Target   ecs.EntityID
	Property BoxProperty
	Compute  func() float64
}

// LayoutBindingComponent 挂在容器上的布局绑定列表
// 绑定按注册顺序求值，后面的绑定可以依赖前面绑定的结果
type LayoutBindingComponent struct {
	Bindings []Binding
	// OnChanged 一次求值中有任何写入时调用（在所有绑定求值之后）
	OnChanged func()
}

// Bind 注册一条绑定
func (c *LayoutBindingComponent) Bind(target ecs.EntityID, prop BoxProperty, compute func() float64) {
	c.Bindings = append(c.Bindings, Binding{Target: target, Property: prop, Compute: compute})
}

// Evaluate 对所有绑定求值，只在值变化时写入，返回写入次数
func (c *LayoutBindingComponent) Evaluate(em *ecs.EntityManager) int {
	changed := 0
	for _, b := range c.Bindings {
		box, ok := ecs.GetComponent[*BoxComponent](em, b.Target)
		if !ok {
			continue
		}
		v := b.Compute()
		if box.Get(b.Property) != v {
			box.Set(b.Property, v)
			changed++
		}
	}
	if changed > 0 && c.OnChanged != nil {
		c.OnChanged()
	}
	return changed
}
