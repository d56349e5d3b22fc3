package shell

import (
	"io"

	"github.com/ulikunitz/xz"
)

// maximumDictionaryCapacity matches the dictionary of xz preset -9.
const maximumDictionaryCapacity = 64 << 20

func NewXzCompressor(writer io.Writer) (io.WriteCloser, error) {
	return xz.WriterConfig{DictCap: maximumDictionaryCapacity}.NewWriter(writer)
}
