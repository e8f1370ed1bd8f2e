package slider

import (
	"math"
	"testing"

	"github.com/decker502/slider/pkg/components"
	"github.com/decker502/slider/pkg/ecs"
)

// 默认几何下宽 216 的控件：滑轨 216，滑块 16，每单位值 2 像素
const testWidth = 216.0

// newShownSlider 创建并显示一个控件（无内边距，高 40）
func newShownSlider(t *testing.T, isRange bool, width float64) (*ecs.EntityManager, *Slider) {
	t.Helper()
	em := ecs.NewEntityManager()
	s := New(em, isRange)
	s.SetBounds(0, 0, width, 40)
	s.Show()
	if !s.IsRendered() {
		t.Fatalf("Show 之后控件应已显示")
	}
	return em, s
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func boxOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.BoxComponent {
	t.Helper()
	b, ok := ecs.GetComponent[*components.BoxComponent](em, id)
	if !ok {
		t.Fatalf("实体 %d 缺少 BoxComponent", id)
	}
	return b
}

// counter 统计通知次数并记录最后一个值
type counter struct {
	calls int
	last  float64
}

func (c *counter) handle(v float64) {
	c.calls++
	c.last = v
}

func TestNew_Defaults(t *testing.T) {
	em := ecs.NewEntityManager()
	s := New(em, false)

	if s.MinValue() != DefaultMinValue || s.MaxValue() != DefaultMaxValue || s.Step() != DefaultStep {
		t.Errorf("默认范围错误: min=%v max=%v step=%v", s.MinValue(), s.MaxValue(), s.Step())
	}
	if s.LowValue() != 0 || s.UpValue() != 100 {
		t.Errorf("未设置时 low 应为最小值、up 应为最大值: low=%v up=%v", s.LowValue(), s.UpValue())
	}
	if s.IsRendered() {
		t.Errorf("未显示的控件不应视为已显示")
	}
	if s.ActiveHandle() != Low {
		t.Errorf("默认活动滑块应为 Low")
	}
	// 容器 + 6 个元素
	if em.EntityCount() != 7 {
		t.Errorf("期望 7 个实体，实际 %d", em.EntityCount())
	}
	if _, ok := ecs.GetComponent[*components.SliderComponent](em, s.Entity()); !ok {
		t.Errorf("容器应挂载 SliderComponent")
	}
}

func TestInitialize_Children(t *testing.T) {
	tests := []struct {
		name    string
		isRange bool
		want    []string
	}{
		{"单值模式不插入上限元素", false, []string{NameRangeBar, NameSelectedBar, NameHandle, NameCaption}},
		{"范围模式插入全部元素", true, []string{NameRangeBar, NameSelectedBar, NameHandle, NameCaption, NameUpHandle, NameUpCaption}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			s := New(em, tt.isRange)
			s.Initialize()
			s.Initialize() // 重复调用无副作用

			node, _ := ecs.GetComponent[*components.NodeComponent](em, s.Entity())
			if len(node.Children) != len(tt.want) {
				t.Fatalf("期望 %d 个子元素，实际 %d", len(tt.want), len(node.Children))
			}
			for i, child := range node.Children {
				n, _ := ecs.GetComponent[*components.NodeComponent](em, child)
				if n.Name != tt.want[i] {
					t.Errorf("第 %d 个子元素期望 %s，实际 %s", i, tt.want[i], n.Name)
				}
			}
		})
	}
}

func TestShow_Layout(t *testing.T) {
	em, s := newShownSlider(t, true, testWidth)

	bar := boxOf(t, em, s.RangeBar())
	if bar.X != 0 || bar.Width != testWidth {
		t.Errorf("滑轨应占满内容宽度: x=%v w=%v", bar.X, bar.Width)
	}
	// 40 - 16/2 - 4/2
	if bar.Y != 30 {
		t.Errorf("滑轨 Y 期望 30，实际 %v", bar.Y)
	}

	sel := boxOf(t, em, s.SelectedBar())
	if sel.Y != bar.Y || sel.Height != bar.Height {
		t.Errorf("选中条应跟随滑轨: y=%v h=%v", sel.Y, sel.Height)
	}

	for _, h := range []Handle{Low, High} {
		hb := boxOf(t, em, s.HandleEntity(h))
		if hb.Y != 24 {
			t.Errorf("%s 滑块 Y 期望 24，实际 %v", h, hb.Y)
		}
		cb := boxOf(t, em, s.CaptionEntity(h))
		if cb.Y != 12 {
			t.Errorf("%s 标题 Y 期望 12，实际 %v", h, cb.Y)
		}
	}

	// 初始值：low = 0，up = 100
	if x := boxOf(t, em, s.HandleEntity(Low)).X; x != 0 {
		t.Errorf("主滑块 X 期望 0，实际 %v", x)
	}
	if x := boxOf(t, em, s.HandleEntity(High)).X; x != 200 {
		t.Errorf("上限滑块 X 期望 200，实际 %v", x)
	}
	if s.CaptionText(Low) != "0" || s.CaptionText(High) != "100" {
		t.Errorf("标题文本错误: %q %q", s.CaptionText(Low), s.CaptionText(High))
	}
}

func TestShow_Padding(t *testing.T) {
	em := ecs.NewEntityManager()
	s := New(em, false)
	s.SetBounds(10, 5, 236, 50)
	s.SetPadding(10, 2, 10, 0)
	s.Show()

	bar := boxOf(t, em, s.RangeBar())
	if bar.X != 10 || bar.Width != 216 {
		t.Errorf("滑轨应扣除左右内边距: x=%v w=%v", bar.X, bar.Width)
	}
	// 50 - 8 - 2 - 2
	if bar.Y != 38 {
		t.Errorf("滑轨 Y 期望 38，实际 %v", bar.Y)
	}

	s.SetValue(50)
	// 中心 = 50*2 + 10 + 8
	if x := boxOf(t, em, s.HandleEntity(Low)).X; x != 110 {
		t.Errorf("主滑块 X 期望 110，实际 %v", x)
	}
	sel := boxOf(t, em, s.SelectedBar())
	if sel.X != 10 || sel.Width != 108 {
		t.Errorf("选中条应从左内边距到滑块中点: x=%v w=%v", sel.X, sel.Width)
	}
}

func TestLayout_ResizeRepositions(t *testing.T) {
	em, s := newShownSlider(t, false, testWidth)
	s.SetValue(50)
	if x := boxOf(t, em, s.HandleEntity(Low)).X; x != 100 {
		t.Fatalf("主滑块 X 期望 100，实际 %v", x)
	}

	s.SetBounds(0, 0, 416, 40)
	lb, _ := ecs.GetComponent[*components.LayoutBindingComponent](em, s.Entity())
	if n := lb.Evaluate(em); n == 0 {
		t.Fatalf("尺寸变化后绑定应有写入")
	}

	// 每单位值 4 像素：中心 208
	if x := boxOf(t, em, s.HandleEntity(Low)).X; x != 200 {
		t.Errorf("尺寸变化后主滑块 X 期望 200，实际 %v", x)
	}
	if v := s.PointToValue(208); v != 50 {
		t.Errorf("尺寸变化后像素比例应更新，PointToValue(208) = %v", v)
	}
}

func TestDispose(t *testing.T) {
	em, s := newShownSlider(t, true, testWidth)
	c := &counter{}
	s.ValueChanged.Handle(c.handle)
	s.LowValueChanged.Handle(c.handle)
	s.UpValueChanged.Handle(c.handle)

	s.Dispose()
	s.Dispose() // 重复释放无副作用

	if s.ValueChanged.HandlerCount()+s.LowValueChanged.HandlerCount()+s.UpValueChanged.HandlerCount() != 0 {
		t.Errorf("释放后不应再有订阅")
	}
	s.SetLowValue(10)
	if c.calls != 0 {
		t.Errorf("释放后不应再触发通知，实际 %d 次", c.calls)
	}
	if s.IsRendered() {
		t.Errorf("释放后不应视为已显示")
	}

	em.RemoveMarkedEntities()
	if em.EntityCount() != 0 {
		t.Errorf("释放后元素实体应被销毁，剩余 %d", em.EntityCount())
	}
}

func TestDispose_DetachesFromParent(t *testing.T) {
	em := ecs.NewEntityManager()
	root := em.CreateEntity()
	ecs.AddComponent(em, root, components.NewNode("Root"))

	s := New(em, false)
	components.AppendChild(em, root, s.Entity())
	s.Dispose()

	node, _ := ecs.GetComponent[*components.NodeComponent](em, root)
	if len(node.Children) != 0 {
		t.Errorf("释放后应从父节点移除，剩余 %v", node.Children)
	}
}

func TestSetAnimation_UnknownEasing(t *testing.T) {
	em := ecs.NewEntityManager()
	s := New(em, false)
	s.SetAnimation(Animation{Duration: 0.2, Easing: "bounce"})
	if s.animation.Easing != "easeOut" {
		t.Errorf("未知缓动应回退到默认值，实际 %q", s.animation.Easing)
	}
}
