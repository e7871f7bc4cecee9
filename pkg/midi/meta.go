package midi

import (
	"fmt"
)

const (
	MetaSequenceNumber    = 0x00
	MetaText              = 0x01
	MetaCopyright         = 0x02
	MetaTrackName         = 0x03
	MetaInstrumentName    = 0x04
	MetaLyric             = 0x05
	MetaMarker            = 0x06
	MetaCuePoint          = 0x07
	MetaChannelPrefix     = 0x20
	MetaEndOfTrack        = 0x2F
	MetaTempo             = 0x51
	MetaSMPTEOffset       = 0x54
	MetaTimeSignature     = 0x58
	MetaKeySignature      = 0x59
	MetaSequencerSpecific = 0x7F
)

// Literal values of meta events whose payload is not decoded.
const (
	SequenceNumberLabel    = "Sequence Number"
	EndOfTrackLabel        = "End of Track"
	SequencerSpecificLabel = "Sequencer Specific Meta-event"
)

type SMPTEOffset struct {
	Hour     uint8 `json:"hour"`
	Minute   uint8 `json:"minute"`
	Second   uint8 `json:"second"`
	Frame    uint8 `json:"frame"`
	SubFrame uint8 `json:"subFrame"`
}

type TimeSignature struct {
	Numerator   uint8 `json:"numerator"`
	Denominator uint  `json:"denominator"`
	// MIDI clocks per metronome click.
	ClocksPerClick          uint8 `json:"midiClocksPerClick"`
	ThirtySecondsPerQuarter uint8 `json:"num32ndNotesPerQuarter"`
}

// KeySignature: SharpsFlats is -7 (seven flats) to 7 (seven sharps),
// MajorMinor is 0 for major and 1 for minor.
type KeySignature struct {
	SharpsFlats int8  `json:"sharpsFlats"`
	MajorMinor  uint8 `json:"majorMinor"`
}

func (k KeySignature) Minor() bool {
	return k.MajorMinor == 1
}

// UnknownMeta is the raw payload of a meta type without a decoder.
type UnknownMeta []byte

func (d *Decoder) parseMetaEvent() (*Meta, error) {
	metaType, err := d.r.readByte()
	if err != nil {
		return nil, err
	}
	length, err := d.r.varLen()
	if err != nil {
		return nil, err
	}
	data, err := d.r.readBytes(int(length))
	if err != nil {
		return nil, err
	}

	return &Meta{
		EventHeader:  EventHeader{Kind: MetaEventType},
		MetaType:     metaType,
		MetaTypeName: fmt.Sprintf("0x%X", metaType),
		Length:       length,
		Data:         data,
		Value:        decodeMetaValue(metaType, data),
	}, nil
}

// decodeMetaValue interprets a meta payload. Short payloads read the missing
// bytes as zero.
func decodeMetaValue(metaType uint8, data []byte) interface{} {
	at := func(i int) uint8 {
		if i < len(data) {
			return data[i]
		}
		return 0
	}

	switch metaType {
	case MetaSequenceNumber:
		// TODO: decode the 16-bit sequence number once a consumer needs it.
		return SequenceNumberLabel
	case MetaText, MetaCopyright, MetaTrackName, MetaInstrumentName, MetaLyric, MetaMarker, MetaCuePoint:
		return decodeText(data)
	case MetaChannelPrefix:
		return at(0)
	case MetaEndOfTrack:
		return EndOfTrackLabel
	case MetaTempo:
		// microseconds per quarter note
		return uint32(at(0))<<16 | uint32(at(1))<<8 | uint32(at(2))
	case MetaSMPTEOffset:
		return SMPTEOffset{
			Hour:     at(0),
			Minute:   at(1),
			Second:   at(2),
			Frame:    at(3),
			SubFrame: at(4),
		}
	case MetaTimeSignature:
		return TimeSignature{
			Numerator:               at(0),
			Denominator:             1 << at(1),
			ClocksPerClick:          at(2),
			ThirtySecondsPerQuarter: at(3),
		}
	case MetaKeySignature:
		return KeySignature{
			SharpsFlats: int8(at(0)),
			MajorMinor:  at(1),
		}
	case MetaSequencerSpecific:
		return SequencerSpecificLabel
	default:
		return UnknownMeta(data)
	}
}
