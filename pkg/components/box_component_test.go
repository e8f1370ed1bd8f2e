package components

import (
	"testing"

	"github.com/decker502/slider/pkg/ecs"
)

func TestBoxComponent_GetSet(t *testing.T) {
	b := &BoxComponent{}
	props := []BoxProperty{PropX, PropY, PropWidth, PropHeight}
	for i, p := range props {
		b.Set(p, float64(i+1))
	}
	if *b != (BoxComponent{X: 1, Y: 2, Width: 3, Height: 4}) {
		t.Errorf("Set 写入错误: %+v", *b)
	}
	for i, p := range props {
		if got := b.Get(p); got != float64(i+1) {
			t.Errorf("Get(%s) = %v, 期望 %v", p, got, i+1)
		}
	}
	if b.Get(BoxProperty(99)) != 0 {
		t.Errorf("未知属性应返回 0")
	}
	if BoxProperty(99).String() != "unknown" || PropWidth.String() != "width" {
		t.Errorf("属性名称错误")
	}
}

func TestBoxComponent_Contains(t *testing.T) {
	b := &BoxComponent{X: 10, Y: 20, Width: 100, Height: 40}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"内部", 50, 30, true},
		{"左上角边界", 10, 20, true},
		{"右下角边界", 110, 60, true},
		{"左侧", 9, 30, false},
		{"下方", 50, 61, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, 期望 %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
	if b.CenterX() != 60 {
		t.Errorf("CenterX 期望 60，实际 %v", b.CenterX())
	}
}

func TestTextComponent_EstimateWidth(t *testing.T) {
	tests := []struct {
		name string
		text TextComponent
		want float64
	}{
		{"默认字号", TextComponent{Text: "100"}, 18},
		{"自定义字号", TextComponent{Text: "42", FontSize: 8}, 16},
		{"按字符计数", TextComponent{Text: "一百"}, 12},
		{"空文本", TextComponent{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.EstimateWidth(); got != tt.want {
				t.Errorf("EstimateWidth = %v, 期望 %v", got, tt.want)
			}
		})
	}
}

func TestTweenComponent(t *testing.T) {
	tc := &TweenComponent{}
	if tc.Active() {
		t.Errorf("新组件不应有过渡")
	}

	tc.Start(PropX, 0, 10, 0.5, "linear")
	tc.Start(PropX, 5, 20, 0.5, "easeOut")

	to, ok := tc.Target(PropX)
	if !ok || to != 20 {
		t.Errorf("再次 Start 应取代旧过渡，目标 %v", to)
	}
	if tw := tc.Tracks[PropX]; tw.From != 5 || tw.Easing != "easeOut" {
		t.Errorf("过渡参数错误: %+v", tw)
	}
	if _, ok := tc.Target(PropY); ok {
		t.Errorf("未启动的属性不应有目标")
	}

	tw := &Tween{Duration: 0}
	if tw.Progress() != 1 || !tw.Done() {
		t.Errorf("时长为 0 的过渡应立即完成")
	}
	tw = &Tween{Duration: 2, Elapsed: 3}
	if tw.Progress() != 1 {
		t.Errorf("进度不应超过 1")
	}
}

func TestLayoutBindingComponent_Evaluate(t *testing.T) {
	em := ecs.NewEntityManager()
	a := em.CreateEntity()
	b := em.CreateEntity()
	boxA := &BoxComponent{Width: 50}
	boxB := &BoxComponent{}
	ecs.AddComponent(em, a, boxA)
	ecs.AddComponent(em, b, boxB)

	lb := &LayoutBindingComponent{}
	// 后面的绑定依赖前面绑定的结果
	lb.Bind(b, PropWidth, func() float64 { return boxA.Width * 2 })
	lb.Bind(b, PropX, func() float64 { return boxB.Width + 1 })
	lb.Bind(em.CreateEntity(), PropX, func() float64 { return 1 }) // 没有 BoxComponent，跳过

	if n := lb.Evaluate(em); n != 2 {
		t.Errorf("首次求值应写入 2 次，实际 %d", n)
	}
	if boxB.Width != 100 || boxB.X != 101 {
		t.Errorf("绑定结果错误: %+v", *boxB)
	}
	if n := lb.Evaluate(em); n != 0 {
		t.Errorf("没有变化时不应写入，实际 %d", n)
	}
}
