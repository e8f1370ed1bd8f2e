package systems

import (
	"image/color"

	"github.com/decker502/slider/pkg/components"
	"github.com/decker502/slider/pkg/ecs"
	"github.com/decker502/slider/pkg/slider"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 悬停 / 拖动时滑块的高亮颜色
var sliderActiveTint = color.RGBA{R: 255, G: 220, B: 120, A: 255}

// debugFontHeight ebitenutil 调试字体的行高
const debugFontHeight = 16

// SliderRenderSystem 滑动条渲染系统
// 从根节点开始按插入顺序遍历视图树：有 FillComponent 的元素画填充矩形，有 TextComponent 的元素画文本
type SliderRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewSliderRenderSystem 创建滑动条渲染系统
func NewSliderRenderSystem(em *ecs.EntityManager) *SliderRenderSystem {
	return &SliderRenderSystem{entityManager: em}
}

// Draw 绘制所有可见的节点树
func (s *SliderRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.NodeComponent, *components.BoxComponent](s.entityManager) {
		node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)
		if node.Parent != 0 {
			continue
		}
		s.drawNode(screen, id, 0, 0, false)
	}
}

func (s *SliderRenderSystem) drawNode(screen *ebiten.Image, id ecs.EntityID, offsetX, offsetY float64, highlight bool) {
	node, ok := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)
	if !ok || !node.Visible {
		return
	}
	box, ok := ecs.GetComponent[*components.BoxComponent](s.entityManager, id)
	if !ok {
		return
	}
	x, y := offsetX+box.X, offsetY+box.Y

	if sc, ok := ecs.GetComponent[*components.SliderComponent](s.entityManager, id); ok {
		highlight = sc.IsHovered || sc.IsDragging
	}

	if fill, ok := ecs.GetComponent[*components.FillComponent](s.entityManager, id); ok && box.Width > 0 && box.Height > 0 {
		clr := fill.Color
		if highlight && isHandleNode(node) {
			clr = sliderActiveTint
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(box.Width), float32(box.Height), clr, true)
	}

	if text, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok && text.Text != "" {
		// 调试字体固定大小，文本底部对齐到元素底部
		ebitenutil.DebugPrintAt(screen, text.Text, int(x), int(y+box.Height)-debugFontHeight)
	}

	for _, child := range node.Children {
		s.drawNode(screen, child, x, y, highlight)
	}
}

func isHandleNode(node *components.NodeComponent) bool {
	return node.Name == slider.NameHandle || node.Name == slider.NameUpHandle
}
