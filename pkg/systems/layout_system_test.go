package systems

import (
	"testing"

	"github.com/decker502/slider/pkg/components"
	"github.com/decker502/slider/pkg/ecs"
)

func newNode(em *ecs.EntityManager, name string, parent ecs.EntityID) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, components.NewNode(name))
	ecs.AddComponent(em, id, &components.BoxComponent{})
	if parent != 0 {
		components.AppendChild(em, parent, id)
	}
	return id
}

func TestLayoutSystem_MarkShown(t *testing.T) {
	em := ecs.NewEntityManager()
	root := newNode(em, "Root", 0)
	child := newNode(em, "Child", root)

	shown := 0
	childNode, _ := ecs.GetComponent[*components.NodeComponent](em, child)
	childNode.WhenShown(func() { shown++ })

	rootNode, _ := ecs.GetComponent[*components.NodeComponent](em, root)
	rootNode.Visible = false

	system := NewLayoutSystem(em)
	system.Update(0)
	if shown != 0 || childNode.Shown {
		t.Fatalf("祖先不可见时子节点不应显示")
	}

	rootNode.Visible = true
	system.Update(0)
	system.Update(0)
	if shown != 1 {
		t.Errorf("OnShown 应只执行一次，实际 %d 次", shown)
	}
	if !rootNode.Shown || !childNode.Shown {
		t.Errorf("可见节点都应标记为已显示")
	}
}

func TestLayoutSystem_EvaluatesBindings(t *testing.T) {
	em := ecs.NewEntityManager()
	container := newNode(em, "Container", 0)
	bar := newNode(em, "Bar", container)

	containerBox, _ := ecs.GetComponent[*components.BoxComponent](em, container)
	containerBox.Width = 100

	lb := &components.LayoutBindingComponent{}
	lb.Bind(bar, components.PropWidth, func() float64 { return containerBox.Width - 20 })
	changed := 0
	lb.OnChanged = func() { changed++ }
	ecs.AddComponent(em, container, lb)

	system := NewLayoutSystem(em)
	system.Update(0)

	barBox, _ := ecs.GetComponent[*components.BoxComponent](em, bar)
	if barBox.Width != 80 {
		t.Errorf("绑定应写入宽度 80，实际 %v", barBox.Width)
	}
	if changed != 1 {
		t.Errorf("有写入时 OnChanged 应执行一次，实际 %d", changed)
	}

	system.Update(0)
	if changed != 1 {
		t.Errorf("没有变化时不应执行 OnChanged")
	}

	containerBox.Width = 300
	system.Update(0)
	if barBox.Width != 280 || changed != 2 {
		t.Errorf("输入变化后应重新求值: width=%v changed=%d", barBox.Width, changed)
	}
}
