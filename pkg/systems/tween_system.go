package systems

import (
	"github.com/decker502/slider/pkg/components"
	"github.com/decker502/slider/pkg/ecs"
	"github.com/decker502/slider/pkg/utils"
)

// TweenSystem 补间动画系统
// 推进每个 TweenComponent 的过渡，按缓动曲线写入 BoxComponent，完成的过渡被移除
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建补间动画系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Update 推进所有过渡
func (s *TweenSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.TweenComponent, *components.BoxComponent](s.entityManager)
	for _, id := range entities {
		tc, _ := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
		box, _ := ecs.GetComponent[*components.BoxComponent](s.entityManager, id)

		for prop, tw := range tc.Tracks {
			tw.Elapsed += deltaTime
			ease, _ := utils.GetEasing(tw.Easing)
			box.Set(prop, utils.Lerp(tw.From, tw.To, ease(tw.Progress())))
			if tw.Done() {
				delete(tc.Tracks, prop)
			}
		}
	}
}
