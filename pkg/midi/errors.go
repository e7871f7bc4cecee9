package midi

import (
	"errors"
	"fmt"
)

var (
	// ErrNotABuffer is returned when Parse is given no byte buffer at all.
	ErrNotABuffer = errors.New("input must be a byte buffer")
	// ErrInvalidChunkType is reported when a chunk tag is not the expected marker.
	ErrInvalidChunkType = errors.New("invalid chunk type")
	// ErrUnexpectedEndOfData is reported when a read runs past the end of the buffer.
	ErrUnexpectedEndOfData = errors.New("unexpected end of data")
	// ErrRunningStatusUnavailable is reported when a data byte shows up before any status byte in a track.
	ErrRunningStatusUnavailable = errors.New("running status unavailable")
	// ErrTooLarge is returned by ReadAll when the input exceeds the size limit.
	ErrTooLarge = errors.New("input exceeds size limit")
)

// ChunkTypeError describes a chunk tag mismatch.
type ChunkTypeError struct {
	Expected string
	Actual   string
	Offset   int
}

func (e *ChunkTypeError) Error() string {
	return fmt.Sprintf("%s - expected %q chunk, got %q at offset %d", ErrInvalidChunkType, e.Expected, e.Actual, e.Offset)
}

func (e *ChunkTypeError) Unwrap() error {
	return ErrInvalidChunkType
}

// EndOfDataError describes a read that would cross the end of the buffer.
type EndOfDataError struct {
	Want   int
	Offset int
}

func (e *EndOfDataError) Error() string {
	return fmt.Sprintf("%s - reading %d bytes at offset %d", ErrUnexpectedEndOfData, e.Want, e.Offset)
}

func (e *EndOfDataError) Unwrap() error {
	return ErrUnexpectedEndOfData
}
