package midi

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func headerChunk(format, tracks, division uint16) []byte {
	b := []byte{'M', 'T', 'h', 'd', 0, 0, 0, 6}
	b = binary.BigEndian.AppendUint16(b, format)
	b = binary.BigEndian.AppendUint16(b, tracks)
	return binary.BigEndian.AppendUint16(b, division)
}

func trackChunk(body ...byte) []byte {
	return sizedChunk("MTrk", uint32(len(body)), body...)
}

func sizedChunk(tag string, size uint32, body ...byte) []byte {
	b := append([]byte(tag), 0, 0, 0, 0)
	binary.BigEndian.PutUint32(b[4:], size)
	return append(b, body...)
}

func smfFile(division uint16, tracks ...[]byte) []byte {
	b := headerChunk(1, uint16(len(tracks)), division)
	for _, t := range tracks {
		b = append(b, t...)
	}
	return b
}

func observedLogger(t *testing.T) (*zap.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

// parseTrackBody decodes body as the single track of a file.
func parseTrackBody(t *testing.T, body ...byte) *Track {
	t.Helper()
	data, err := Parse(smfFile(96, trackChunk(body...)))
	require.NoError(t, err)
	require.Len(t, data.Tracks, 1)
	return data.Tracks[0]
}
