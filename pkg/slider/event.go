package slider

// Unbind 取消订阅句柄，调用后回调不再被触发
type Unbind func()

type eventHandler struct {
	fn     func(value float64)
	active bool
}

// Event 值变化通知通道
// 回调在触发它的同一线程上按注册顺序同步执行
type Event struct {
	handlers []*eventHandler
	disposed bool
}

// Handle 注册回调，返回取消订阅句柄
// 已释放的通道不再接受订阅
func (e *Event) Handle(fn func(value float64)) Unbind {
	if e.disposed || fn == nil {
		return func() {}
	}
	h := &eventHandler{fn: fn, active: true}
	e.handlers = append(e.handlers, h)
	return func() { h.active = false }
}

// Raise 通知所有订阅者
func (e *Event) Raise(value float64) {
	if e.disposed {
		return
	}
	// 先复制活动回调并清理已取消的订阅；回调中新增的订阅从下一次触发开始生效
	active := make([]*eventHandler, 0, len(e.handlers))
	for _, h := range e.handlers {
		if h.active {
			active = append(active, h)
		}
	}
	e.handlers = active
	for _, h := range active {
		if h.active {
			h.fn(value)
		}
	}
}

// HandlerCount 返回活动订阅数
func (e *Event) HandlerCount() int {
	n := 0
	for _, h := range e.handlers {
		if h.active {
			n++
		}
	}
	return n
}

// Dispose 释放通道，之后的 Raise 和 Handle 都不再生效
func (e *Event) Dispose() {
	for _, h := range e.handlers {
		h.active = false
	}
	e.handlers = nil
	e.disposed = true
}
