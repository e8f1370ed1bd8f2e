package config

import (
	"fmt"
	"math"
	"os"

	"github.com/decker502/slider/pkg/ecs"
	"github.com/decker502/slider/pkg/slider"
	"github.com/decker502/slider/pkg/utils"
	"gopkg.in/yaml.v3"
)

// SlidersConfig 滑动条配置文件
type SlidersConfig struct {
	Sliders []SliderConfig `yaml:"sliders"`
}

// SliderConfig 单个滑动条的配置
type SliderConfig struct {
	Name      string   `yaml:"name"`      // 名称，用于日志，必须唯一
	Range     bool     `yaml:"range"`     // 是否为范围模式（两个滑块）
	Min       *float64 `yaml:"min"`       // 最小值，默认 0
	Max       *float64 `yaml:"max"`       // 最大值，默认 100
	Step      *float64 `yaml:"step"`      // 步长，默认 1，必须大于 0
	Low       *float64 `yaml:"low"`       // 初始值（范围模式为下限），默认最小值
	Up        *float64 `yaml:"up"`        // 范围模式的初始上限，默认最大值
	Formatter string   `yaml:"formatter"` // 标题格式："plain"、"fixed:2"、"comma"、"bytes"、"duration"、"percent"

	Bounds    BoundsConfig    `yaml:"bounds"`
	Padding   PaddingConfig   `yaml:"padding"`
	Geometry  GeometryConfig  `yaml:"geometry"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoundsConfig 控件位置和尺寸（像素）
type BoundsConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddingConfig 控件内边距（像素）
type PaddingConfig struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// GeometryConfig 元素尺寸，0 表示使用默认值
type GeometryConfig struct {
	BarHeight     float64 `yaml:"barHeight"`
	HandleWidth   float64 `yaml:"handleWidth"`
	HandleHeight  float64 `yaml:"handleHeight"`
	CaptionWidth  float64 `yaml:"captionWidth"`
	CaptionHeight float64 `yaml:"captionHeight"`
	FontSize      float64 `yaml:"fontSize"`
}

// AnimationConfig 点击动画
type AnimationConfig struct {
	Duration float64 `yaml:"duration"` // 秒，0 表示不使用动画
	Easing   string  `yaml:"easing"`   // 缓动名称，默认 easeOut
}

// LoadSlidersConfig 从 YAML 文件加载滑动条配置
func LoadSlidersConfig(path string) (*SlidersConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取滑动条配置 %s: %w", path, err)
	}
	cfg, err := ParseSlidersConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseSlidersConfig 解析 YAML 数据，填充默认值并校验
func ParseSlidersConfig(data []byte) (*SlidersConfig, error) {
	var cfg SlidersConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("无法解析滑动条配置: %w", err)
	}
	for i := range cfg.Sliders {
		cfg.Sliders[i].applyDefaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func float64Ptr(v float64) *float64 { return &v }

func (c *SliderConfig) applyDefaults() {
	if c.Min == nil {
		c.Min = float64Ptr(slider.DefaultMinValue)
	}
	if c.Max == nil {
		c.Max = float64Ptr(slider.DefaultMaxValue)
	}
	if c.Step == nil {
		c.Step = float64Ptr(slider.DefaultStep)
	}
}

// Validate 校验所有滑动条配置
func (c *SlidersConfig) Validate() error {
	if len(c.Sliders) == 0 {
		return fmt.Errorf("至少需要配置一个滑动条")
	}
	seen := make(map[string]bool, len(c.Sliders))
	for i := range c.Sliders {
		s := &c.Sliders[i]
		if s.Name == "" {
			return fmt.Errorf("第 %d 个滑动条缺少 name", i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("滑动条名称重复: %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.validate(); err != nil {
			return fmt.Errorf("滑动条 %q: %w", s.Name, err)
		}
	}
	return nil
}

func (c *SliderConfig) validate() error {
	lo, hi := *c.Min, *c.Max
	if lo > hi {
		return fmt.Errorf("min (%v) 不能大于 max (%v)", lo, hi)
	}
	if !(*c.Step > 0) {
		return fmt.Errorf("step 必须大于 0，实际 %v", *c.Step)
	}
	if c.Bounds.Width <= 0 || c.Bounds.Height <= 0 {
		return fmt.Errorf("bounds 的宽高必须大于 0，实际 %vx%v", c.Bounds.Width, c.Bounds.Height)
	}
	if c.Low != nil && (*c.Low < lo || *c.Low > hi) {
		return fmt.Errorf("low (%v) 超出范围 [%v, %v]", *c.Low, lo, hi)
	}
	if c.Up != nil {
		if !c.Range {
			return fmt.Errorf("up 只能用于范围模式")
		}
		if *c.Up < lo || *c.Up > hi {
			return fmt.Errorf("up (%v) 超出范围 [%v, %v]", *c.Up, lo, hi)
		}
		if c.Low != nil && *c.Low > *c.Up {
			return fmt.Errorf("low (%v) 不能大于 up (%v)", *c.Low, *c.Up)
		}
	}
	if _, err := slider.ParseFormatter(c.Formatter); err != nil {
		return err
	}
	if c.Animation.Duration < 0 {
		return fmt.Errorf("animation.duration 不能为负数")
	}
	if !utils.IsKnownEasing(c.Animation.Easing) {
		return fmt.Errorf("未知的缓动类型: %q", c.Animation.Easing)
	}
	return nil
}

// geometry 用默认值补全未配置的尺寸
func (c *SliderConfig) geometry() slider.Geometry {
	g := slider.DefaultGeometry
	pick := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	pick(&g.BarHeight, c.Geometry.BarHeight)
	pick(&g.HandleWidth, c.Geometry.HandleWidth)
	pick(&g.HandleHeight, c.Geometry.HandleHeight)
	pick(&g.CaptionWidth, c.Geometry.CaptionWidth)
	pick(&g.CaptionHeight, c.Geometry.CaptionHeight)
	pick(&g.FontSize, c.Geometry.FontSize)
	return g
}

// Build 按配置创建滑动条并插入视图树（尚未显示）
// 配置应已经过 ParseSlidersConfig 的默认值填充和校验
func (c *SliderConfig) Build(em *ecs.EntityManager) (*slider.Slider, error) {
	if c.Min == nil || c.Max == nil || c.Step == nil {
		c.applyDefaults()
	}
	formatter, err := slider.ParseFormatter(c.Formatter)
	if err != nil {
		return nil, fmt.Errorf("滑动条 %q: %w", c.Name, err)
	}

	s := slider.New(em, c.Range)
	s.SetGeometry(c.geometry())
	s.SetPadding(c.Padding.Left, c.Padding.Top, c.Padding.Right, c.Padding.Bottom)
	s.SetBounds(c.Bounds.X, c.Bounds.Y, c.Bounds.Width, c.Bounds.Height)

	s.SetMinValue(*c.Min)
	s.SetMaxValue(*c.Max)
	s.SetStep(*c.Step)
	s.SetCaptionText(formatter)
	s.SetAnimation(slider.Animation{Duration: c.Animation.Duration, Easing: c.Animation.Easing})

	c.ApplyValues(s)

	s.Initialize()
	return s, nil
}

// ApplyValues 把滑动条恢复为配置中的初始值（未配置时为最小值/最大值）
// 范围模式下先把下限收到当前上限以内，再设置上限，最后设置下限，
// 保证两个值都不会被当前的另一个值截断
func (c *SliderConfig) ApplyValues(s *slider.Slider) {
	low := s.MinValue()
	if c.Low != nil {
		low = *c.Low
	}
	if !c.Range {
		s.SetLowValue(low)
		return
	}

	up := s.MaxValue()
	if c.Up != nil {
		up = *c.Up
	}
	if s.LowValue() > up {
		s.SetLowValue(math.Min(low, up))
	}
	s.SetUpValue(up)
	s.SetLowValue(low)
}

// BuildAll 按配置顺序创建所有滑动条
func (c *SlidersConfig) BuildAll(em *ecs.EntityManager) ([]*slider.Slider, error) {
	built := make([]*slider.Slider, 0, len(c.Sliders))
	for i := range c.Sliders {
		s, err := c.Sliders[i].Build(em)
		if err != nil {
			return nil, err
		}
		built = append(built, s)
	}
	return built, nil
}
