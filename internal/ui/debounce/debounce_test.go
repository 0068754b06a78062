package debounce

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firedMsg string

func newRecorder(delay time.Duration) (*Debouncer[string], *[]string) {
	var fired []string
	d := New(delay, func(v string) tea.Cmd {
		fired = append(fired, v)
		return func() tea.Msg { return firedMsg(v) }
	})
	return d, &fired
}

// deliver runs each tick command and feeds its message back, in order
func deliver(t *testing.T, d *Debouncer[string], cmds []tea.Cmd) []tea.Cmd {
	t.Helper()
	var out []tea.Cmd
	for _, c := range cmds {
		require.NotNil(t, c)
		cmd, handled := d.Update(c())
		require.True(t, handled)
		if cmd != nil {
			out = append(out, cmd)
		}
	}
	return out
}

func TestBurstFiresOnceWithLastValue(t *testing.T) {
	d, fired := newRecorder(time.Millisecond)

	var ticks []tea.Cmd
	for _, v := range []string{"x", "xy", "xyz"} {
		ticks = append(ticks, d.Trigger(v))
	}
	assert.True(t, d.Pending())

	out := deliver(t, d, ticks)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"xyz"}, *fired)
	assert.Equal(t, firedMsg("xyz"), out[0]())
	assert.False(t, d.Pending())
}

func TestSeparateBurstsFireSeparately(t *testing.T) {
	d, fired := newRecorder(time.Millisecond)

	deliver(t, d, []tea.Cmd{d.Trigger("a")})
	deliver(t, d, []tea.Cmd{d.Trigger("b")})

	assert.Equal(t, []string{"a", "b"}, *fired)
}

func TestDuplicateTickDoesNotRefire(t *testing.T) {
	d, fired := newRecorder(time.Millisecond)

	tick := d.Trigger("a")
	msg := tick()
	d.Update(msg)
	cmd, handled := d.Update(msg)

	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"a"}, *fired)
}

func TestCancelDropsPending(t *testing.T) {
	d, fired := newRecorder(time.Millisecond)

	tick := d.Trigger("a")
	d.Cancel()
	cmd, handled := d.Update(tick())

	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Empty(t, *fired)
}

func TestStopIgnoresPendingAndLaterTriggers(t *testing.T) {
	d, fired := newRecorder(time.Millisecond)

	tick := d.Trigger("a")
	d.Stop()

	cmd, _ := d.Update(tick())
	assert.Nil(t, cmd)
	assert.Nil(t, d.Trigger("b"))
	assert.False(t, d.Pending())
	assert.Empty(t, *fired)
}

func TestForeignMessagesAreNotHandled(t *testing.T) {
	a, _ := newRecorder(time.Millisecond)
	b, fired := newRecorder(time.Millisecond)

	tick := a.Trigger("from a")
	b.Trigger("from b")

	cmd, handled := b.Update(tick())
	assert.False(t, handled)
	assert.Nil(t, cmd)

	_, handled = b.Update(firedMsg("other"))
	assert.False(t, handled)
	assert.Empty(t, *fired)
}

func TestTickWaitsForDelay(t *testing.T) {
	d, _ := newRecorder(30 * time.Millisecond)

	start := time.Now()
	d.Trigger("a")()
	assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
}
