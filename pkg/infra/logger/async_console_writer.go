package logger

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// AsyncConsoleHook mirrors entries to out without blocking the caller. Lines
// that do not fit the buffer are dropped and counted.
type AsyncConsoleHook struct {
	out     io.Writer
	lines   chan string
	done    chan struct{}
	dropped atomic.Uint64
	wg      sync.WaitGroup
	once    sync.Once
}

func NewAsyncConsoleHook(out io.Writer, bufferSize int) *AsyncConsoleHook {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	hook := &AsyncConsoleHook{
		out:   out,
		lines: make(chan string, bufferSize),
		done:  make(chan struct{}),
	}
	hook.wg.Add(1)
	go hook.drain()
	return hook
}

func (h *AsyncConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	select {
	case h.lines <- line:
	default:
		h.dropped.Add(1)
	}
	return nil
}

// Dropped reports how many lines were discarded on a full buffer.
func (h *AsyncConsoleHook) Dropped() uint64 {
	return h.dropped.Load()
}

func (h *AsyncConsoleHook) drain() {
	defer h.wg.Done()
	for {
		select {
		case line := <-h.lines:
			_, _ = io.WriteString(h.out, line)
		case <-h.done:
			for {
				select {
				case line := <-h.lines:
					_, _ = io.WriteString(h.out, line)
				default:
					return
				}
			}
		}
	}
}

// Close flushes buffered lines. It is safe to call more than once.
func (h *AsyncConsoleHook) Close() {
	h.once.Do(func() {
		close(h.done)
		h.wg.Wait()
	})
}

func (h *AsyncConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
