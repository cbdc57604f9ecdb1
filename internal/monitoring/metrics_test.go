package monitoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDemo(t *testing.T) {
	m := NewMetrics()

	m.RecordDemo("time.sleep", 100*time.Millisecond, false)
	m.RecordDemo("net.listen", 5*time.Millisecond, false)
	m.RecordDemo("fileio.roundtrip", time.Millisecond, true)

	summary := m.Summary()
	assert.Equal(t, 3, summary["demos_executed"])
	assert.Equal(t, 1, summary["demo_errors"])
}

func TestSeparateCollectorsDoNotCollide(t *testing.T) {
	// Creating two collectors must not panic on duplicate registration.
	require.NotPanics(t, func() {
		a := NewMetrics()
		b := NewMetrics()
		a.RecordDemo("x.y", time.Millisecond, false)
		b.RecordDemo("x.y", time.Millisecond, false)
	})
}

func TestRecordTour(t *testing.T) {
	m := NewMetrics()
	m.RecordTour()

	summary := m.Summary()
	assert.Equal(t, 0, summary["demos_executed"])
	assert.NotEmpty(t, summary["uptime"])
}
