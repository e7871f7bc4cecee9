package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeatWindow(t *testing.T) {
	w := newBeatWindow(480)

	w.advanceTo(960)

	assert.True(t, w.contains(960))
	assert.Equal(t, int64(2), w.beats)
	assert.Equal(t, uint64(960), w.lowerBound)
	assert.Equal(t, uint64(1440), w.upperBound)
	assert.Equal(t, 2, w.position(0, 4))
}

func TestBeatWindow_Position(t *testing.T) {
	w := newBeatWindow(96)

	w.advanceTo(95)
	assert.Equal(t, int64(0), w.beats)

	w.advanceTo(96 * 5)
	assert.Equal(t, int64(5), w.beats)
	assert.Equal(t, 1, w.position(0, 4))
	assert.Equal(t, 2, w.position(0, 3))
	assert.Equal(t, 0, w.position(5, 3))

	// never moves backwards
	w.advanceTo(10)
	assert.Equal(t, int64(5), w.beats)
}

func TestBeatWindow_ZeroDivision(t *testing.T) {
	w := newBeatWindow(0)
	w.advanceTo(1000)
	assert.Equal(t, int64(0), w.beats)
	assert.Equal(t, 0, w.position(0, 0))
}
