package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Run("disabled logger writes nothing", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := NewLogger(buf, false)

		l.Debugf("target: %s", "mylib")
		l.Block("config:", "a: b\n")

		assert.Empty(t, buf.String())
	})

	t.Run("enabled logger prefixes every line", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := NewLogger(buf, true)

		l.Debugf("target: %s", "mylib")
		l.Block("config:", "a: b\nc: d\n")

		assert.Equal(t, "[DEBUG] target: mylib\n[DEBUG] config:\n[DEBUG]   a: b\n[DEBUG]   c: d\n", buf.String())
	})

	t.Run("nil logger is disabled", func(t *testing.T) {
		var l *Logger
		assert.False(t, l.Enabled())
		l.Debugf("ignored")
	})
}
