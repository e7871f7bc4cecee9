package midi

import (
	"fmt"

	"go.uber.org/zap"
)

// voiceDecoder decodes the data bytes of a channel voice message.
type voiceDecoder func(r *reader, channel uint8) (Event, error)

// voiceDecoders is indexed by the upper nibble of the status byte.
var voiceDecoders = [16]voiceDecoder{
	0x8: decodeNoteOff,
	0x9: decodeNoteOn,
	0xA: decodePolyAftertouch,
	0xB: decodeControlChange,
	0xC: decodeProgramChange,
	0xD: decodeChannelAftertouch,
	0xE: decodePitchBend,
}

// systemCommonLength is the payload size per system common status byte.
var systemCommonLength = map[byte]int{
	0xF1: 1, // MTC quarter frame
	0xF2: 2, // song position pointer
	0xF3: 1, // song select
	0xF4: 0,
	0xF5: 0,
	0xF6: 0, // tune request
	0xF8: 0, // timing clock
	0xF9: 0,
	0xFA: 0, // start
	0xFB: 0, // continue
	0xFC: 0, // stop
	0xFD: 0,
	0xFE: 0, // active sensing
}

// trackDecoder owns the running status of a single track.
type trackDecoder struct {
	d          *Decoder
	index      int
	lastStatus byte
	hasStatus  bool
}

// parseTrack reads one MTrk chunk. Errors inside the chunk truncate the
// track; the returned error is only set for chunk header failures.
func (d *Decoder) parseTrack(index int) (*Track, error) {
	start := d.r.offset()
	tag, err := d.r.readTag()
	if err != nil {
		return nil, err
	}
	if tag != trackChunkID {
		return nil, &ChunkTypeError{Expected: trackChunkID, Actual: tag, Offset: start}
	}

	size, err := d.r.readUint32()
	if err != nil {
		return nil, err
	}

	track := &Track{ChunkType: tag, ChunkSize: size, Events: []Event{}}
	end := d.r.offset() + int(size)
	if end > len(d.r.buf) {
		d.log.Warn("track chunk exceeds buffer",
			zap.Int("track", index), zap.Uint32("size", size), zap.Int("available", d.r.remaining()))
	}

	td := &trackDecoder{d: d, index: index}
	for d.r.offset() < end {
		e, err := td.next()
		if err != nil {
			d.log.Error("truncating track",
				zap.Int("track", index), zap.Int("offset", d.r.offset()),
				zap.Int("events", len(track.Events)), zap.Error(err))
			break
		}

		track.Events = append(track.Events, e)

		if m, ok := e.(*Meta); ok && m.MetaType == MetaEndOfTrack {
			break
		}
	}

	d.r.seek(end)
	return track, nil
}

// next decodes one delta-time and event pair.
func (td *trackDecoder) next() (Event, error) {
	r := td.d.r

	delta, err := r.varLen()
	if err != nil {
		return nil, err
	}

	lead, err := r.readByte()
	if err != nil {
		return nil, err
	}

	status := lead
	if lead&0x80 != 0 {
		td.lastStatus, td.hasStatus = lead, true
	} else {
		if !td.hasStatus {
			return nil, fmt.Errorf("%w - data byte %#02x at offset %d", ErrRunningStatusUnavailable, lead, r.offset()-1)
		}
		status = td.lastStatus
		// the lead byte is the first data byte
		r.seek(r.offset() - 1)
	}

	e, err := td.decode(status)
	if err != nil {
		return nil, err
	}
	e.setDelta(delta)
	return e, nil
}

func (td *trackDecoder) decode(status byte) (Event, error) {
	msgType := status >> 4
	if isVoiceMsgType(msgType) {
		return voiceDecoders[msgType](td.d.r, status&0x0F)
	}

	switch status {
	case 0xF0:
		return td.decodeSysex(), nil
	case 0xF7:
		td.d.log.Warn("unexpected standalone 0xF7", zap.Int("track", td.index), zap.Int("offset", td.d.r.offset()-1))
		return newUnknown(status), nil
	case 0xFF:
		return td.d.parseMetaEvent()
	}

	return td.decodeSystemCommon(status)
}

// decodeSysex collects bytes up to the 0xF7 terminator or the end of the buffer.
func (td *trackDecoder) decodeSysex() Event {
	r := td.d.r
	data := []byte{}
	for r.remaining() > 0 {
		b, _ := r.readByte()
		if b == 0xF7 {
			break
		}
		data = append(data, b)
	}
	return &Sysex{EventHeader: EventHeader{Kind: SysexEventType}, Data: data}
}

func (td *trackDecoder) decodeSystemCommon(status byte) (Event, error) {
	n, ok := systemCommonLength[status]
	// the table covers every status byte routed here; this only trips if it loses one
	if !ok {
		td.d.log.Warn("unknown system common message",
			zap.String("status", fmt.Sprintf("0x%X", status)), zap.Int("offset", td.d.r.offset()-1))
	}
	data, err := td.d.r.readBytes(n)
	if err != nil {
		return nil, err
	}
	return &SystemCommon{EventHeader: EventHeader{Kind: SystemCommonEventType}, Status: status, Data: data}, nil
}

func newUnknown(status byte) *Unknown {
	return &Unknown{EventHeader: EventHeader{Kind: UnknownEventType}, Status: status, Data: []byte{}}
}

func readPair(r *reader) (uint8, uint8, error) {
	a, err := r.readByte()
	if err != nil {
		return 0, 0, err
	}
	b, err := r.readByte()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func decodeNoteOff(r *reader, channel uint8) (Event, error) {
	note, velocity, err := readPair(r)
	if err != nil {
		return nil, err
	}
	return &Note{EventHeader: EventHeader{Kind: NoteOffEvent}, Channel: channel, NoteNumber: note, Velocity: velocity}, nil
}

func decodeNoteOn(r *reader, channel uint8) (Event, error) {
	note, velocity, err := readPair(r)
	if err != nil {
		return nil, err
	}
	kind := NoteOnEvent
	if velocity == 0 {
		kind = NoteOffEvent
	}
	return &Note{EventHeader: EventHeader{Kind: kind}, Channel: channel, NoteNumber: note, Velocity: velocity}, nil
}

func decodePolyAftertouch(r *reader, channel uint8) (Event, error) {
	note, pressure, err := readPair(r)
	if err != nil {
		return nil, err
	}
	return &PolyAftertouch{EventHeader: EventHeader{Kind: PolyphonicAftertouchEvent}, Channel: channel, NoteNumber: note, Pressure: pressure}, nil
}

func decodeControlChange(r *reader, channel uint8) (Event, error) {
	controller, value, err := readPair(r)
	if err != nil {
		return nil, err
	}
	return &ControlChange{EventHeader: EventHeader{Kind: ControlChangeEvent}, Channel: channel, Controller: controller, Value: value}, nil
}

func decodeProgramChange(r *reader, channel uint8) (Event, error) {
	program, err := r.readByte()
	if err != nil {
		return nil, err
	}
	return &ProgramChange{EventHeader: EventHeader{Kind: ProgramChangeEvent}, Channel: channel, Program: program}, nil
}

func decodeChannelAftertouch(r *reader, channel uint8) (Event, error) {
	pressure, err := r.readByte()
	if err != nil {
		return nil, err
	}
	return &ChannelAftertouch{EventHeader: EventHeader{Kind: ChannelAftertouchEvent}, Channel: channel, Pressure: pressure}, nil
}

func decodePitchBend(r *reader, channel uint8) (Event, error) {
	lsb, msb, err := readPair(r)
	if err != nil {
		return nil, err
	}
	return &PitchBend{EventHeader: EventHeader{Kind: PitchBendEvent}, Channel: channel, Value: uint16(msb)<<7 | uint16(lsb)}, nil
}
