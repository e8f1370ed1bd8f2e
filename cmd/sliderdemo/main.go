// Package main 提供滑动条演示程序
// 按 YAML 配置创建一组滑动条（单值和范围模式），用鼠标或触摸操作
//
// 用法:
//
//	go run ./cmd/sliderdemo [-config path/to/sliders.yaml] [-verbose]
//
// 操作:
//   - 点击滑轨：最近的滑块移动到点击位置（带动画）
//   - 拖动：滑块跟随指针，松开后保存值
//   - R：把所有滑动条恢复为配置中的初始值
//   - ESC：退出
package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/decker502/slider/pkg/components"
	"github.com/decker502/slider/pkg/config"
	"github.com/decker502/slider/pkg/ecs"
	"github.com/decker502/slider/pkg/slider"
	"github.com/decker502/slider/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

//go:embed data/sliders.yaml
var defaultConfig []byte

var (
	configPath = flag.String("config", "", "滑动条配置文件路径（默认使用内置配置）")
	verbose    = flag.Bool("verbose", false, "输出逐帧调试日志")
)

// DemoGame 演示程序
type DemoGame struct {
	entityManager *ecs.EntityManager
	cfg           *config.SlidersConfig

	// 系统
	layoutSystem *systems.LayoutSystem
	inputSystem  *systems.SliderInputSystem
	tweenSystem  *systems.TweenSystem
	renderSystem *systems.SliderRenderSystem

	root    ecs.EntityID
	sliders []*slider.Slider
}

// NewDemoGame 按配置创建演示程序
func NewDemoGame(cfg *config.SlidersConfig) (*DemoGame, error) {
	em := ecs.NewEntityManager()
	g := &DemoGame{
		entityManager: em,
		cfg:           cfg,
		layoutSystem:  systems.NewLayoutSystem(em),
		inputSystem:   systems.NewSliderInputSystem(em),
		tweenSystem:   systems.NewTweenSystem(em),
		renderSystem:  systems.NewSliderRenderSystem(em),
	}

	g.root = em.CreateEntity()
	ecs.AddComponent(em, g.root, components.NewNode("Root"))
	ecs.AddComponent(em, g.root, &components.BoxComponent{Width: screenWidth, Height: screenHeight})

	sliders, err := cfg.BuildAll(em)
	if err != nil {
		return nil, fmt.Errorf("创建滑动条失败: %w", err)
	}
	for i, s := range sliders {
		components.AppendChild(em, g.root, s.Entity())
		g.watch(cfg.Sliders[i].Name, s)
	}
	g.sliders = sliders

	log.Printf("[SliderDemo] Created %d sliders", len(sliders))
	return g, nil
}

// watch 订阅值变化并写日志
func (g *DemoGame) watch(name string, s *slider.Slider) {
	if s.IsRange() {
		s.LowValueChanged.Handle(func(v float64) {
			log.Printf("[SliderDemo] %s: low = %v (%s)", name, v, s.CaptionText(slider.Low))
		})
		s.UpValueChanged.Handle(func(v float64) {
			log.Printf("[SliderDemo] %s: up = %v (%s)", name, v, s.CaptionText(slider.High))
		})
		return
	}
	s.ValueChanged.Handle(func(v float64) {
		log.Printf("[SliderDemo] %s: value = %v (%s)", name, v, s.CaptionText(slider.Low))
	})
}

// reset 恢复配置中的初始值
func (g *DemoGame) reset() {
	for i, s := range g.sliders {
		g.cfg.Sliders[i].ApplyValues(s)
	}
	log.Printf("[SliderDemo] Reset all sliders")
}

// Update 更新逻辑
func (g *DemoGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.layoutSystem.Update(dt)
	g.inputSystem.Update(dt)
	g.tweenSystem.Update(dt)
	g.entityManager.RemoveMarkedEntities()
	return nil
}

// Draw 绘制
func (g *DemoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 40, G: 44, B: 52, A: 255})
	g.renderSystem.Draw(screen)

	var sb strings.Builder
	for i, s := range g.sliders {
		fmt.Fprintf(&sb, "%s = %s\n", g.cfg.Sliders[i].Name, s.ControlValue())
	}
	sb.WriteString("R: reset  ESC: quit")
	ebitenutil.DebugPrintAt(screen, sb.String(), 40, 380)
}

// Layout 返回逻辑屏幕尺寸
func (g *DemoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// setVerbose 同时开关系统和控件的逐帧调试日志
func setVerbose(on bool) {
	systems.Verbose = on
	slider.Verbose = on
}

func loadConfig() (*config.SlidersConfig, error) {
	if *configPath == "" {
		return config.ParseSlidersConfig(defaultConfig)
	}
	return config.LoadSlidersConfig(*configPath)
}

func main() {
	flag.Parse()
	setVerbose(*verbose)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	game, err := NewDemoGame(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Slider Demo")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
