package gesture

// DefaultTapSlop 点击容差（像素）：按下到释放的移动距离不超过它视为点击
const DefaultTapSlop = 4.0

// defaultFrameTime 未提供帧间隔时使用的默认值（60 TPS）
const defaultFrameTime = 1.0 / 60.0

// State 识别器状态
type State int

const (
	// StateIdle 无指针按下
	StateIdle State = iota
	// StatePressed 已按下，尚未超过点击容差
	StatePressed
	// StatePanning 拖动中
	StatePanning
)

// Recognizer 手势识别器
// 每帧调用 Update，根据指针按下/移动/释放的变化产出手势事件
//
// 状态转换：
//   - Idle -> Pressed：指针按下
//   - Pressed -> Panning：移动距离超过 TapSlop（立即产出第一次 PanUpdate）
//   - Pressed -> Idle：释放，产出 Tap
//   - Panning -> Idle：释放，产出 PanFinished
type Recognizer struct {
	input PointerInput

	// TapSlop 点击容差（像素）
	TapSlop float64

	state  State
	origin Point // 按下位置
	last   Point // 上一帧位置
}

// NewRecognizer 创建手势识别器
func NewRecognizer(input PointerInput) *Recognizer {
	return &Recognizer{
		input:   input,
		TapSlop: DefaultTapSlop,
	}
}

// State 返回当前状态
func (r *Recognizer) State() State {
	return r.state
}

// Origin 返回当前手势的按下位置（Idle 时无意义）
func (r *Recognizer) Origin() Point {
	return r.origin
}

// Update 读取一次指针采样并返回本帧识别出的事件
//
// 参数：
//   - dt: 距上一帧的时间（秒），用于计算速度；<= 0 时按 1/60 秒处理
func (r *Recognizer) Update(dt float64) []Event {
	if dt <= 0 {
		dt = defaultFrameTime
	}

	pressed, x, y := r.input.Pointer()
	current := Point{X: float64(x), Y: float64(y)}

	switch r.state {
	case StateIdle:
		if pressed {
			r.state = StatePressed
			r.origin = current
			r.last = current
		}
		return nil

	case StatePressed:
		if !pressed {
			r.state = StateIdle
			return []Event{{Kind: KindTap, Point: current, Origin: r.origin}}
		}
		if current.Distance(r.origin) <= r.TapSlop {
			r.last = current
			return nil
		}
		// 超过容差，开始拖动：第一次更新从按下位置开始
		r.state = StatePanning
		return []Event{r.panEvent(r.origin, current, dt)}

	case StatePanning:
		if !pressed {
			r.state = StateIdle
			return []Event{{Kind: KindPanFinished, Origin: r.origin}}
		}
		if current == r.last {
			return nil
		}
		return []Event{r.panEvent(r.last, current, dt)}
	}

	return nil
}

// Reset 放弃当前手势，回到 Idle（不产出事件）
func (r *Recognizer) Reset() {
	r.state = StateIdle
}

func (r *Recognizer) panEvent(from, to Point, dt float64) Event {
	r.last = to
	delta := to.Sub(from)
	return Event{
		Kind:   KindPanUpdate,
		Origin: r.origin,
		Pan: PanEvent{
			From:     from,
			To:       to,
			Velocity: Point{X: delta.X / dt, Y: delta.Y / dt},
			Touches:  r.input.Touches(),
		},
	}
}
