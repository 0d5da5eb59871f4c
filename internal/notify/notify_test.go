package notify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubLogger struct {
	lines []string
}

func (l *stubLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func TestBuffer_Drain(t *testing.T) {
	b := NewBuffer()
	assert.Equal(t, []string{}, b.Drain())

	b.Notify("uno")
	b.Notify("dos")

	assert.Equal(t, []string{"uno", "dos"}, b.Drain())
	assert.Empty(t, b.Drain())
}

func TestFanout(t *testing.T) {
	b := NewBuffer()
	log := &stubLogger{}

	Fanout{b, NewLogging("design=d1", log)}.Notify("hola")

	assert.Equal(t, []string{"hola"}, b.Drain())
	assert.Equal(t, []string{"design=d1 notification: hola"}, log.lines)
}
