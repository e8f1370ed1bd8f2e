package components

// Tween 单个属性的补间过渡
type Tween struct {
	From     float64
	To       float64
	Elapsed  float64 // 已用时间（秒）
	Duration float64 // 总时长（秒）
	// Easing 缓动类型：
	// - "linear": 匀速
	// - "easeOut": 三次方缓出（默认）
	// - "easeInOut": 三次方缓入缓出
	Easing string
}

// Done 是否已完成
func (t *Tween) Done() bool {
	return t.Elapsed >= t.Duration
}

// Progress 返回 [0, 1] 的线性进度
func (t *Tween) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := t.Elapsed / t.Duration
	if p > 1 {
		return 1
	}
	return p
}

// TweenComponent 元素上正在进行的补间动画
// 每个属性最多一个过渡：对同一属性再次 Start 会取代旧过渡（以最新目标为准）
type TweenComponent struct {
	Tracks map[BoxProperty]*Tween
}

// NewTweenComponent 创建空的补间组件
func NewTweenComponent() *TweenComponent {
	return &TweenComponent{Tracks: make(map[BoxProperty]*Tween)}
}

// Start 为属性启动过渡，取代同一属性上的旧过渡
// 新过渡从 from（通常是当前实际值）开始
func (tc *TweenComponent) Start(prop BoxProperty, from, to, duration float64, easing string) *Tween {
	if tc.Tracks == nil {
		tc.Tracks = make(map[BoxProperty]*Tween)
	}
	tw := &Tween{From: from, To: to, Duration: duration, Easing: easing}
	tc.Tracks[prop] = tw
	return tw
}

// Target 返回属性当前过渡的目标值
func (tc *TweenComponent) Target(prop BoxProperty) (float64, bool) {
	tw, ok := tc.Tracks[prop]
	if !ok {
		return 0, false
	}
	return tw.To, true
}

// Active 是否还有未完成的过渡
func (tc *TweenComponent) Active() bool {
	return len(tc.Tracks) > 0
}
