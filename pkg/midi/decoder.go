package midi

import (
	"errors"

	"go.uber.org/zap"
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger receiving decoding advisories.
func WithLogger(l *zap.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.log = l.Named("decoder")
		}
	}
}

// Decoder parses one Standard MIDI File held in memory. A Decoder is not
// safe for concurrent use; create one per file.
type Decoder struct {
	data []byte
	r    *reader
	log  *zap.Logger
}

func NewDecoder(data []byte, opts ...Option) *Decoder {
	d := &Decoder{data: data, log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse decodes data with a fresh Decoder.
func Parse(data []byte, opts ...Option) (*ParsedMidiData, error) {
	return NewDecoder(data, opts...).Decode()
}

// Decode parses the whole file. Header failures and an MTrk tag mismatch
// fail the parse with a nil result. Malformed events only truncate their
// own track and are never returned.
func (d *Decoder) Decode() (*ParsedMidiData, error) {
	if d.data == nil {
		return nil, ErrNotABuffer
	}
	d.r = newReader(d.data)

	header, err := d.parseHeader()
	if err != nil {
		return nil, err
	}

	out := &ParsedMidiData{Header: header, Tracks: make([]*Track, 0, header.NumTracks)}

	for i := 0; i < int(header.NumTracks); i++ {
		track, err := d.parseTrack(i)
		if err != nil {
			if errors.Is(err, ErrInvalidChunkType) {
				return nil, err
			}
			d.log.Error("stop reading tracks",
				zap.Int("track", i), zap.Int("parsed", len(out.Tracks)), zap.Error(err))
			break
		}
		out.Tracks = append(out.Tracks, track)
	}

	return out, nil
}
