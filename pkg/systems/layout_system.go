package systems

import (
	"log"

	"github.com/decker502/slider/pkg/components"
	"github.com/decker502/slider/pkg/ecs"
)

// Verbose 为 true 时系统输出逐帧调试日志
var Verbose = false

// LayoutSystem 布局系统
//
// 每帧执行两步：
//  1. 对可见（自身及所有祖先可见）且尚未显示过的节点调用 MarkShown，触发 OnShown 回调
//  2. 对所有 LayoutBindingComponent 求值，只在结果变化时写入 BoxComponent
type LayoutSystem struct {
	entityManager *ecs.EntityManager
}

// NewLayoutSystem 创建布局系统
func NewLayoutSystem(em *ecs.EntityManager) *LayoutSystem {
	return &LayoutSystem{entityManager: em}
}

// Update 执行一次布局
func (s *LayoutSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.NodeComponent](s.entityManager) {
		node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)
		if node.Shown || !isVisible(s.entityManager, id) {
			continue
		}
		if node.MarkShown() && Verbose {
			log.Printf("[LayoutSystem] Node %d (%s) shown", id, node.Name)
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.LayoutBindingComponent](s.entityManager) {
		lb, _ := ecs.GetComponent[*components.LayoutBindingComponent](s.entityManager, id)
		if n := lb.Evaluate(s.entityManager); n > 0 && Verbose {
			log.Printf("[LayoutSystem] Entity %d: %d bindings changed", id, n)
		}
	}
}

// isVisible 节点自身及所有祖先是否都可见
func isVisible(em *ecs.EntityManager, id ecs.EntityID) bool {
	for id != 0 {
		node, ok := ecs.GetComponent[*components.NodeComponent](em, id)
		if !ok {
			return true
		}
		if !node.Visible {
			return false
		}
		id = node.Parent
	}
	return true
}
