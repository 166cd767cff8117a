package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	state State
	width int
}

func record(calls *[]call) Listener {
	return func(s State, w int) { *calls = append(*calls, call{s, w}) }
}

func TestMonitor_DesktopToTabletFiresOnce(t *testing.T) {
	m := NewMonitor(1200, 800)
	require.True(t, m.Current().IsDesktop)

	var calls []call
	unsubscribe := m.Subscribe(record(&calls))
	defer unsubscribe()

	m.Resize(900, 800)

	require.Len(t, calls, 1)
	assert.True(t, calls[0].state.IsTablet)
	assert.Equal(t, 900, calls[0].width)
	assert.True(t, Blocked(m.Current()))
}

func TestMonitor_EveryResizeNotifies(t *testing.T) {
	m := NewMonitor(1200, 800)
	var calls []call
	m.Subscribe(record(&calls))

	m.Resize(1300, 800)
	m.Resize(1300, 800)
	m.Resize(500, 800)

	require.Len(t, calls, 3)
	assert.Equal(t, TierDesktop, calls[1].state.Tier())
	assert.Equal(t, TierMobile, calls[2].state.Tier())
}

func TestMonitor_UnsubscribeIsIdempotent(t *testing.T) {
	m := NewMonitor(1200, 800)
	var a, b []call
	unsubA := m.Subscribe(record(&a))
	m.Subscribe(record(&b))

	unsubA()
	unsubA()
	assert.Equal(t, 1, m.Listeners())

	m.Resize(700, 600)
	assert.Empty(t, a)
	assert.Len(t, b, 1)
}

func TestMonitor_ListenerMayUnsubscribeItself(t *testing.T) {
	m := NewMonitor(1200, 800)
	var count int
	var unsubscribe Unsubscribe
	unsubscribe = m.Subscribe(func(State, int) {
		count++
		unsubscribe()
	})

	m.Resize(800, 600)
	m.Resize(700, 600)

	assert.Equal(t, 1, count)
	assert.Zero(t, m.Listeners())
}

func TestMonitor_NotifiesInSubscriptionOrder(t *testing.T) {
	m := NewMonitor(0, 0)
	var order []string
	m.Subscribe(func(State, int) { order = append(order, "first") })
	m.Subscribe(func(State, int) { order = append(order, "second") })

	m.Resize(1024, 0)

	assert.Equal(t, []string{"first", "second"}, order)
}
