package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline(t *testing.T) {
	data, err := Parse(specExampleFile)
	require.NoError(t, err)

	tl := Timeline(data.Tracks[3], data.Header.TimeDivision)
	require.Len(t, tl, 6)

	ticks := make([]uint64, 0, len(tl))
	for _, e := range tl {
		ticks = append(ticks, e.AbsTicks)
	}
	assert.Equal(t, []uint64{0, 0, 0, 384, 384, 384}, ticks)

	assert.False(t, tl[0].Simultaneous)
	assert.True(t, tl[1].Simultaneous)
	assert.True(t, tl[2].Simultaneous)
	assert.False(t, tl[3].Simultaneous)

	assert.Equal(t, int64(4), tl[3].Beat)
	assert.Equal(t, 0, tl[3].BarPosition)
}

func TestTimeline_BarPositions(t *testing.T) {
	track := parseTrackBody(t,
		0x00, 0x99, 0x24, 0x64, // beat 0
		0x60, 0x26, 0x64, // beat 1
		0x81, 0x40, 0x2A, 0x64, // beat 3
		0x00, 0xFF, 0x58, 0x04, 0x03, 0x02, 0x18, 0x08, // 3/4 from beat 3
		0x81, 0x40, 0x99, 0x24, 0x64, // beat 5
		0x81, 0x40, 0x24, 0x64, // beat 7
	)

	tl := Timeline(track, TimeDivision{Format: MetricalTF, TicksPerBeat: 96})
	require.Len(t, tl, 6)

	beats := []int64{}
	positions := []int{}
	for _, e := range tl {
		beats = append(beats, e.Beat)
		positions = append(positions, e.BarPosition)
	}
	assert.Equal(t, []int64{0, 1, 3, 3, 5, 7}, beats)
	assert.Equal(t, []int{0, 1, 3, 0, 2, 1}, positions)
}

func TestTimeline_SMPTE(t *testing.T) {
	track := parseTrackBody(t, 0x00, 0x90, 0x3C, 0x40, 0x50, 0x80, 0x3C, 0x00)

	tl := Timeline(track, newTimeDivision(0xE728))
	require.Len(t, tl, 2)
	assert.Equal(t, uint64(0x50), tl[1].AbsTicks)
	assert.Equal(t, int64(0), tl[1].Beat)
	assert.Equal(t, 0, tl[1].BarPosition)
}

func TestTimeline_NilTrack(t *testing.T) {
	assert.Nil(t, Timeline(nil, TimeDivision{}))
}

func TestTimeSignature_QuarterBeats(t *testing.T) {
	assert.Equal(t, 4, TimeSignature{Numerator: 4, Denominator: 4}.quarterBeats())
	assert.Equal(t, 3, TimeSignature{Numerator: 6, Denominator: 8}.quarterBeats())
	assert.Equal(t, 1, TimeSignature{Numerator: 1, Denominator: 8}.quarterBeats())
	assert.Equal(t, 4, TimeSignature{Numerator: 3}.quarterBeats())
}
