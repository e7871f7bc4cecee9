package midi

import (
	"golang.org/x/text/encoding/unicode"
)

// reader is a bounds-checked cursor over an in-memory SMF buffer.
type reader struct {
	buf []byte
	off int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) offset() int {
	return r.off
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

// seek moves the cursor to off, clamped to the buffer bounds.
func (r *reader) seek(off int) {
	switch {
	case off < 0:
		r.off = 0
	case off > len(r.buf):
		r.off = len(r.buf)
	default:
		r.off = off
	}
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, &EndOfDataError{Want: n, Offset: r.off}
	}
	b := make([]byte, n)
	copy(b, r.buf[r.off:r.off+n])
	r.off += n
	return b, nil
}

func (r *reader) readByte() (byte, error) {
	if r.remaining() < 1 {
		return 0, &EndOfDataError{Want: 1, Offset: r.off}
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *reader) readUint16() (uint16, error) {
	if r.remaining() < 2 {
		return 0, &EndOfDataError{Want: 2, Offset: r.off}
	}
	v := uint16(r.buf[r.off])<<8 | uint16(r.buf[r.off+1])
	r.off += 2
	return v, nil
}

func (r *reader) readUint32() (uint32, error) {
	if r.remaining() < 4 {
		return 0, &EndOfDataError{Want: 4, Offset: r.off}
	}
	b := r.buf[r.off : r.off+4]
	r.off += 4
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// varLen reads a variable-length quantity. The 4-byte limit of the SMF
// standard is not enforced; longer sequences wrap around 32 bits.
func (r *reader) varLen() (uint32, error) {
	var val uint32
	for {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		val = val<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return val, nil
		}
	}
}

// readTag reads a 4-byte chunk tag.
func (r *reader) readTag() (string, error) {
	id, err := r.readBytes(4)
	if err != nil {
		return "", err
	}
	return decodeText(id), nil
}

// decodeText decodes UTF-8 with a leading BOM stripped and invalid
// sequences replaced by U+FFFD.
func decodeText(b []byte) string {
	s, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}
