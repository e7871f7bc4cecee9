package midi

import (
	"fmt"
	"io"
	"io/ioutil"
)

// ReadAll reads r fully, failing with ErrTooLarge past maxSize bytes.
// maxSize <= 0 disables the limit.
func ReadAll(r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		return ioutil.ReadAll(r)
	}

	data, err := ioutil.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w - limit is %d bytes", ErrTooLarge, maxSize)
	}
	return data, nil
}

// ParseReader reads at most maxSize bytes from r and parses them.
func ParseReader(r io.Reader, maxSize int64, opts ...Option) (*ParsedMidiData, error) {
	data, err := ReadAll(r, maxSize)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = []byte{}
	}
	return Parse(data, opts...)
}
