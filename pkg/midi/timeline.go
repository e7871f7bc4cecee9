package midi

const defaultBeatsPerBar = 4

// TimedEvent places an event on the track's absolute time axis.
type TimedEvent struct {
	Event    Event
	AbsTicks uint64
	// Simultaneous is set when the event shares its tick with the previous one.
	Simultaneous bool
	// Beat and BarPosition count quarter notes; they stay zero for SMPTE division.
	Beat        int64
	BarPosition int
}

// Timeline accumulates delta-times of a track. Bar positions follow the
// time-signature meta events of the same track, 4/4 until the first one.
func Timeline(track *Track, division TimeDivision) []TimedEvent {
	if track == nil {
		return nil
	}

	out := make([]TimedEvent, 0, len(track.Events))
	metrical := division.Format == MetricalTF && division.TicksPerBeat > 0
	w := newBeatWindow(division.TicksPerBeat)

	var abs uint64
	var barOrigin int64
	beatsPerBar := defaultBeatsPerBar

	for i, e := range track.Events {
		abs += uint64(e.Delta())
		te := TimedEvent{
			Event:        e,
			AbsTicks:     abs,
			Simultaneous: i > 0 && e.Delta() == 0,
		}

		if metrical {
			w.advanceTo(abs)
			if ts, ok := timeSignatureOf(e); ok {
				barOrigin = w.beats
				beatsPerBar = ts.quarterBeats()
			}
			te.Beat = w.beats
			te.BarPosition = w.position(barOrigin, beatsPerBar)
		}

		out = append(out, te)
	}

	return out
}

func timeSignatureOf(e Event) (TimeSignature, bool) {
	m, ok := e.(*Meta)
	if !ok || m.MetaType != MetaTimeSignature {
		return TimeSignature{}, false
	}
	ts, ok := m.Value.(TimeSignature)
	return ts, ok
}

// quarterBeats is the bar length in quarter notes, at least one.
func (ts TimeSignature) quarterBeats() int {
	if ts.Denominator == 0 {
		return defaultBeatsPerBar
	}
	n := int(ts.Numerator) * 4 / int(ts.Denominator)
	if n < 1 {
		return 1
	}
	return n
}
