//go:build !tinygo

package hal

import (
	"sparkcalc/internal/logger"

	"github.com/ternarybob/arbor"
)

// HostConfig sizes the host framebuffer and selects its logger.
type HostConfig struct {
	Width  int
	Height int
	// Log receives HAL log lines; nil selects the global logger.
	Log arbor.ILogger
}

const (
	defaultWidth  = 320
	defaultHeight = 320
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
	t      *hostTime
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	log := cfg.Log
	if log == nil {
		log = logger.GetLogger()
	}
	return &hostHAL{
		logger: &hostLogger{log: log},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	log arbor.ILogger
}

func (l *hostLogger) WriteLineString(s string) {
	l.log.Info().Msg(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.log.Info().Msg(string(b))
}

func sendKey(ch chan KeyEvent, ev KeyEvent) bool {
	select {
	case ch <- ev:
		return true
	default:
		return false
	}
}

func sendPointer(ch chan PointerEvent, ev PointerEvent) bool {
	select {
	case ch <- ev:
		return true
	default:
		return false
	}
}
