package midi

import (
	"encoding/json"
	"fmt"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns scientific pitch notation, 60 being C4.
func NoteName(n uint8) string {
	return fmt.Sprintf("%s%d", noteNames[n%12], int(n)/12-1)
}

// Describe renders the one-line summary of an event.
func Describe(e Event) string {
	switch v := e.(type) {
	case *Note:
		return fmt.Sprintf("Note: %d (%s), Velocity: %d", v.NoteNumber, NoteName(v.NoteNumber), v.Velocity)
	case *ControlChange:
		return fmt.Sprintf("Controller: %d, Value: %d", v.Controller, v.Value)
	case *ProgramChange:
		return fmt.Sprintf("Program: %d", v.Program)
	case *PitchBend:
		return fmt.Sprintf("Value: %d", v.Value)
	case *Meta:
		return fmt.Sprintf("Type: %s, %s", v.MetaTypeName, describeMetaValue(v.Value))
	case *PolyAftertouch:
		return fmt.Sprintf("Note: %d, Pressure: %d", v.NoteNumber, v.Pressure)
	case *ChannelAftertouch:
		return fmt.Sprintf("Pressure: %d", v.Pressure)
	case *Sysex:
		return fmt.Sprintf("Data length: %d bytes", len(v.Data))
	case *SystemCommon:
		return fmt.Sprintf("Status: 0x%X, Data: % X", v.Status, v.Data)
	case *Unknown:
		return fmt.Sprintf("Status: 0x%X", v.Status)
	default:
		return ""
	}
}

func describeMetaValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case UnknownMeta:
		return fmt.Sprintf("% X", []byte(x))
	case SMPTEOffset, TimeSignature, KeySignature:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}
