package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook เขียน log แบบ async เพื่อไม่ให้ file I/O block การจัดการ request
// entry จะถูก buffer ใน channel แล้วเขียนลง writers ใน goroutine แยก
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHookWithWriters สร้าง async hook ที่เขียนออกหลาย writers
// bufferSize คือขนาด buffer ของ log entries (<=0 จะใช้ 1000)
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels คืน log levels ที่ hook นี้จัดการ
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire ถูกเรียกทุกครั้งที่มี log entry ใหม่ — ไม่ block แค่ส่งเข้า channel
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// hook ปิดแล้ว เขียนตรงลง writers เป็น fallback
		data, err := h.formatEntry(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	// ส่งแบบ non-blocking: ถ้า channel เต็มจะทิ้ง entry นี้เพื่อไม่ block request
	select {
	case h.entries <- entry:
	default:
	}

	return nil
}

// processEntries เขียน entries ลง writers ใน goroutine แยก
// มี recover ต่อ entry เพื่อไม่ให้ goroutine ของ logger ทำ server ล่ม
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// ห้ามใช้ logger ตรงนี้เพราะจะวนลูป — เขียน stderr ตรง ๆ
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] %v\n", r)
					debug.PrintStack()
				}
			}()

			data, err := h.formatEntry(entry)
			if err != nil {
				return
			}

			for _, writer := range h.writers {
				if _, err := writer.Write(data); err != nil {
					continue
				}
			}
		}()
	}
}

// formatEntry แปลง entry เป็น bytes ด้วย formatter ของ logger
func (h *AsyncHook) formatEntry(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Close ปิด hook และรอจน entries ที่ค้างถูกเขียนครบ
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
