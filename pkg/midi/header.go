package midi

import (
	"encoding/json"

	"go.uber.org/zap"
)

type TimeFormat int

const (
	MetricalTF TimeFormat = iota + 1
	TimeCodeTF
)

const (
	headerChunkID   = "MThd"
	trackChunkID    = "MTrk"
	headerChunkSize = 6
)

// TimeDivision is the header's division word. For MetricalTF only
// TicksPerBeat is set, for TimeCodeTF only FramesPerSecond and TicksPerFrame.
type TimeDivision struct {
	Raw             uint16     `json:"raw"`
	Format          TimeFormat `json:"format"`
	TicksPerBeat    uint16     `json:"ticksPerBeat"`
	FramesPerSecond uint8      `json:"framesPerSecond"`
	TicksPerFrame   uint8      `json:"ticksPerFrame"`
}

func newTimeDivision(raw uint16) TimeDivision {
	td := TimeDivision{Raw: raw}
	if raw&0x8000 == 0 {
		td.Format = MetricalTF
		td.TicksPerBeat = raw
		return td
	}

	// the high byte holds the negative SMPTE rate
	td.Format = TimeCodeTF
	td.FramesPerSecond = uint8(-int(raw>>8)) & 0x7F
	td.TicksPerFrame = uint8(raw & 0xFF)
	return td
}

// MarshalJSON writes null for the interpretation the format does not use.
func (td TimeDivision) MarshalJSON() ([]byte, error) {
	out := struct {
		Raw             uint16     `json:"raw"`
		Format          TimeFormat `json:"format"`
		TicksPerBeat    *uint16    `json:"ticksPerBeat"`
		FramesPerSecond *uint8     `json:"framesPerSecond"`
		TicksPerFrame   *uint8     `json:"ticksPerFrame"`
	}{Raw: td.Raw, Format: td.Format}

	if td.IsSMPTE() {
		out.FramesPerSecond, out.TicksPerFrame = &td.FramesPerSecond, &td.TicksPerFrame
	} else {
		out.TicksPerBeat = &td.TicksPerBeat
	}
	return json.Marshal(out)
}

// IsSMPTE reports whether the division is expressed in SMPTE frames.
func (td TimeDivision) IsSMPTE() bool {
	return td.Format == TimeCodeTF
}

type Header struct {
	ChunkType    string       `json:"chunkType"`
	ChunkSize    uint32       `json:"chunkSize"`
	Format       uint16       `json:"format"`
	NumTracks    uint16       `json:"numTracks"`
	TimeDivision TimeDivision `json:"timeDivision"`
}

func (d *Decoder) parseHeader() (Header, error) {
	var h Header

	start := d.r.offset()
	tag, err := d.r.readTag()
	if err != nil {
		return h, err
	}
	if tag != headerChunkID {
		return h, &ChunkTypeError{Expected: headerChunkID, Actual: tag, Offset: start}
	}
	h.ChunkType = tag

	if h.ChunkSize, err = d.r.readUint32(); err != nil {
		return h, err
	}
	if h.ChunkSize != headerChunkSize {
		d.log.Warn("unexpected header chunk size",
			zap.Uint32("size", h.ChunkSize), zap.Int("expected", headerChunkSize))
	}

	if h.Format, err = d.r.readUint16(); err != nil {
		return h, err
	}
	if h.NumTracks, err = d.r.readUint16(); err != nil {
		return h, err
	}

	var division uint16
	if division, err = d.r.readUint16(); err != nil {
		return h, err
	}
	h.TimeDivision = newTimeDivision(division)

	// extended headers: skip what follows the known fields
	if h.ChunkSize > headerChunkSize {
		d.r.seek(start + 8 + int(h.ChunkSize))
	}

	return h, nil
}
