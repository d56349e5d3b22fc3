package core

import (
	"bufio"
	"io"
)

const minimumStringLength = 4

// ExtractStrings returns each run of at least minimumStringLength printable
// ASCII characters found in the reader, in order of appearance.
func ExtractStrings(reader io.Reader) (found []string, err error) {
	buffered := bufio.NewReader(reader)
	var current []byte
	flush := func() {
		if len(current) >= minimumStringLength {
			found = append(found, string(current))
		}
		current = current[:0]
	}
	for {
		value, err := buffered.ReadByte()
		if err == io.EOF {
			flush()
			return found, nil
		}
		if err != nil {
			return found, err
		}
		if isPrintable(value) {
			current = append(current, value)
		} else {
			flush()
		}
	}
}

func isPrintable(value byte) bool {
	return value == '\t' || (value >= 0x20 && value <= 0x7e)
}
