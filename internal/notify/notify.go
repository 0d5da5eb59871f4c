// Package notify - приемники пользовательских уведомлений (toast)
package notify

import "sync"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Buffer накапливает уведомления до следующего вызова Drain
type Buffer struct {
	mu       sync.Mutex
	messages []string
}

// NewBuffer создает пустой буфер уведомлений
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Notify добавляет уведомление в буфер
func (b *Buffer) Notify(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, message)
}

// Drain возвращает накопленные уведомления и очищает буфер
func (b *Buffer) Drain() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.messages
	b.messages = nil
	if out == nil {
		return []string{}
	}
	return out
}

// Logging пишет уведомления в лог с префиксом сессии
type Logging struct {
	prefix string
	logger Logger
}

// NewLogging создает приемник, который логирует каждое уведомление
func NewLogging(prefix string, logger Logger) *Logging {
	return &Logging{prefix: prefix, logger: logger}
}

// Notify логирует уведомление
func (l *Logging) Notify(message string) {
	l.logger.Info("%s notification: %s", l.prefix, message)
}

// Sink интерфейс приемника уведомлений
type Sink interface {
	Notify(message string)
}

// Fanout рассылает уведомление во все приемники по порядку
type Fanout []Sink

// Notify рассылает уведомление
func (f Fanout) Notify(message string) {
	for _, s := range f {
		s.Notify(message)
	}
}
