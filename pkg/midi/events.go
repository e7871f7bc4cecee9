package midi

// EventType names an event family. The values match the labels used by the
// JSON output of the inspector.
type EventType string

const (
	NoteOnEvent               EventType = "noteOn"
	NoteOffEvent              EventType = "noteOff"
	PolyphonicAftertouchEvent EventType = "polyphonicAftertouch"
	ControlChangeEvent        EventType = "controlChange"
	ProgramChangeEvent        EventType = "programChange"
	ChannelAftertouchEvent    EventType = "channelAftertouch"
	PitchBendEvent            EventType = "pitchBend"
	MetaEventType             EventType = "meta"
	SysexEventType            EventType = "sysex"
	SystemCommonEventType     EventType = "systemCommon"
	UnknownEventType          EventType = "unknown"
)

// Event is one decoded track event. The concrete types are *Note,
// *PolyAftertouch, *ControlChange, *ProgramChange, *ChannelAftertouch,
// *PitchBend, *Meta, *Sysex, *SystemCommon and *Unknown.
type Event interface {
	Delta() uint32
	Type() EventType
	setDelta(uint32)
}

// EventHeader holds the fields shared by every event.
type EventHeader struct {
	DeltaTime uint32    `json:"deltaTime"`
	Kind      EventType `json:"type"`
}

func (h *EventHeader) Delta() uint32 { return h.DeltaTime }

func (h *EventHeader) Type() EventType { return h.Kind }

func (h *EventHeader) setDelta(d uint32) { h.DeltaTime = d }

// Note is a note-on or note-off. A note-on with velocity 0 is decoded as note-off.
type Note struct {
	EventHeader
	Channel    uint8 `json:"channel"`
	NoteNumber uint8 `json:"noteNumber"`
	Velocity   uint8 `json:"velocity"`
}

type PolyAftertouch struct {
	EventHeader
	Channel    uint8 `json:"channel"`
	NoteNumber uint8 `json:"noteNumber"`
	Pressure   uint8 `json:"pressure"`
}

type ControlChange struct {
	EventHeader
	Channel    uint8 `json:"channel"`
	Controller uint8 `json:"controllerNumber"`
	Value      uint8 `json:"value"`
}

type ProgramChange struct {
	EventHeader
	Channel uint8 `json:"channel"`
	Program uint8 `json:"programNumber"`
}

type ChannelAftertouch struct {
	EventHeader
	Channel  uint8 `json:"channel"`
	Pressure uint8 `json:"pressure"`
}

// PitchBend carries the 14-bit bend value, 8192 being the centre.
type PitchBend struct {
	EventHeader
	Channel uint8  `json:"channel"`
	Value   uint16 `json:"value"`
}

// Meta is a 0xFF meta event. Value depends on MetaType, see decodeMetaValue.
type Meta struct {
	EventHeader
	MetaType     uint8       `json:"metaType"`
	MetaTypeName string      `json:"metaTypeName"`
	Length       uint32      `json:"length"`
	Data         []byte      `json:"data"`
	Value        interface{} `json:"value"`
}

// Sysex holds the bytes between 0xF0 and the terminating 0xF7.
type Sysex struct {
	EventHeader
	Data []byte `json:"data"`
}

type SystemCommon struct {
	EventHeader
	Status uint8  `json:"status"`
	Data   []byte `json:"data"`
}

// Unknown stands in for status bytes the decoder has no layout for.
type Unknown struct {
	EventHeader
	Status uint8  `json:"status"`
	Data   []byte `json:"data"`
}

// Track is one decoded MTrk chunk. ChunkSize is the declared size; Events may
// stop short of it after an End of Track or a decoding error.
type Track struct {
	ChunkType string  `json:"chunkType"`
	ChunkSize uint32  `json:"chunkSize"`
	Events    []Event `json:"events"`
}

// ParsedMidiData is the result of Parse.
type ParsedMidiData struct {
	Header Header   `json:"header"`
	Tracks []*Track `json:"tracks"`
}

func isVoiceMsgType(b byte) bool {
	return 0x8 <= b && b <= 0xE
}
