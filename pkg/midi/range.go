package midi

// beatWindow is a one-beat tick interval stepped forward along a track.
type beatWindow struct {
	beats int64

	lowerBound uint64
	upperBound uint64
}

func newBeatWindow(ticksPerBeat uint16) *beatWindow {
	return &beatWindow{
		lowerBound: 0,
		upperBound: uint64(ticksPerBeat),
	}
}

func (w *beatWindow) stepBy(n int64) {
	w.beats += n
	step := w.upperBound - w.lowerBound

	w.upperBound += step * uint64(n)
	w.lowerBound += step * uint64(n)
}

func (w *beatWindow) contains(tick uint64) bool {
	return tick >= w.lowerBound && tick < w.upperBound
}

// advanceTo moves the window forward until it holds tick. Ticks behind the
// window are ignored.
func (w *beatWindow) advanceTo(tick uint64) {
	step := w.upperBound - w.lowerBound
	if step == 0 || tick < w.lowerBound || w.contains(tick) {
		return
	}
	w.stepBy(int64((tick - w.lowerBound) / step))
}

// position is the beat index inside the current bar, counted from origin.
func (w *beatWindow) position(origin int64, beatsPerBar int) int {
	if beatsPerBar <= 0 {
		beatsPerBar = 4
	}
	return int((w.beats - origin) % int64(beatsPerBar))
}
