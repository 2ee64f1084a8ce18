package logger

import (
	"slices"
	"sync/atomic"

	"go.uber.org/zap/zapcore"
)

// swapCore forwards every entry to a replaceable core. Children made by With
// share the replaceable core and re-apply their fields on each write.
type swapCore struct {
	// current is shared by the root and all of its children.
	current *atomic.Pointer[zapcore.Core]
	// fields were added through With on this branch.
	fields []zapcore.Field
}

func newSwapCore(core zapcore.Core) *swapCore {
	c := &swapCore{current: new(atomic.Pointer[zapcore.Core])}
	c.swap(core)

	return c
}

// swap replaces the core for this logger tree.
func (c *swapCore) swap(core zapcore.Core) {
	c.current.Store(&core)
}

func (c *swapCore) load() zapcore.Core {
	return *c.current.Load()
}

func (c *swapCore) Enabled(level zapcore.Level) bool {
	return c.load().Enabled(level)
}

func (c *swapCore) With(fields []zapcore.Field) zapcore.Core {
	return &swapCore{
		current: c.current,
		fields:  append(slices.Clip(c.fields), fields...),
	}
}

func (c *swapCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}

	return checked
}

func (c *swapCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	core := c.load()
	if len(c.fields) > 0 {
		core = core.With(c.fields)
	}

	return core.Write(entry, fields)
}

func (c *swapCore) Sync() error {
	return c.load().Sync()
}
