package midi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_VarLen(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint32
		n    int
	}{
		{"zero", []byte{0x00}, 0, 1},
		{"single byte", []byte{0x7F}, 127, 1},
		{"two bytes", []byte{0x81, 0x00}, 128, 2},
		{"two bytes max", []byte{0xFF, 0x7F}, 0x3FFF, 2},
		{"three bytes", []byte{0x81, 0x80, 0x00}, 0x4000, 3},
		{"four bytes max", []byte{0xFF, 0xFF, 0xFF, 0x7F}, 0x0FFFFFFF, 4},
		{"five bytes", []byte{0x81, 0x80, 0x80, 0x80, 0x00}, 1 << 28, 5},
		{"trailing data untouched", []byte{0x40, 0x90}, 0x40, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReader(tt.in)
			v, err := r.varLen()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.n, r.offset())
		})
	}
}

func TestReader_VarLenTruncated(t *testing.T) {
	r := newReader([]byte{0x81, 0x80})
	_, err := r.varLen()
	assert.True(t, errors.Is(err, ErrUnexpectedEndOfData))
}

func TestReader_FixedWidth(t *testing.T) {
	r := newReader([]byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE})

	v16, err := r.readUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v16)

	v32, err := r.readUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x56789ABC), v32)

	b, err := r.readByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xDE), b)
	assert.Equal(t, 7, r.offset())

	_, err = r.readByte()
	assert.True(t, errors.Is(err, ErrUnexpectedEndOfData))
}

func TestReader_BoundsDoNotAdvance(t *testing.T) {
	r := newReader([]byte{1, 2, 3})
	r.seek(1)

	_, err := r.readUint32()
	var eod *EndOfDataError
	require.True(t, errors.As(err, &eod))
	assert.Equal(t, 4, eod.Want)
	assert.Equal(t, 1, eod.Offset)
	assert.Equal(t, 1, r.offset())

	_, err = r.readUint16()
	require.NoError(t, err)

	_, err = r.readBytes(2)
	assert.True(t, errors.Is(err, ErrUnexpectedEndOfData))
	assert.Equal(t, 3, r.offset())

	_, err = r.readBytes(-1)
	assert.Error(t, err)
}

func TestReader_ReadBytesCopies(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	r := newReader(buf)

	b, err := r.readBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	buf[0] = 9
	assert.Equal(t, []byte{1, 2}, b)

	empty, err := r.readBytes(0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestReader_SeekClamps(t *testing.T) {
	r := newReader([]byte{1, 2, 3})

	r.seek(10)
	assert.Equal(t, 3, r.offset())
	assert.Equal(t, 0, r.remaining())

	r.seek(-5)
	assert.Equal(t, 0, r.offset())
}

func TestDecodeText(t *testing.T) {
	assert.Equal(t, "Piano", decodeText([]byte("Piano")))
	assert.Equal(t, "Größe", decodeText([]byte("Größe")))
	assert.Equal(t, "bom", decodeText([]byte{0xEF, 0xBB, 0xBF, 'b', 'o', 'm'}))
	assert.Equal(t, "a�b", decodeText([]byte{'a', 0xFF, 'b'}))
	assert.Equal(t, "", decodeText(nil))
}
