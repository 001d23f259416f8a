package forMatrixMarketGo

import (
	"fmt"
	"os"

	"github.com/intel/forMatrixMarketGo/input"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Options control how a Matrix Market file is loaded.
type Options struct {
	// Row selects row-major dense or compressed sparse row storage; false
	// selects the column-based equivalents.
	Row bool `yaml:"row"`

	// BufferSize is the size in bytes of the read and decompression buffers.
	BufferSize int `yaml:"buffer_size"`

	// Parallel reads and decompresses the input on one goroutine while
	// another parses it.
	Parallel bool `yaml:"parallel"`

	// Compression of the input for LoadMatrix, LoadMatrixFromFile and
	// LoadMatrixFromBuffer. The other entry points fix it themselves.
	Compression input.Compression `yaml:"compression"`

	Value ValueType `yaml:"value"`
	Index IndexType `yaml:"index"`

	// Strict rejects data that does not fit an explicitly chosen value or
	// index type instead of converting it with Go's conversion rules.
	Strict bool `yaml:"strict"`

	Logger *zap.Logger `yaml:"-"`
}

func DefaultOptions() Options {
	return Options{
		Row:        true,
		BufferSize: input.DefaultBufferSize,
	}
}

// LoadOptions reads options from a YAML file. Fields missing from the file
// keep their DefaultOptions values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err = yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("%v: %w", path, err)
	}
	return opts, nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) bufferSize() int {
	if o.BufferSize <= 0 {
		return input.DefaultBufferSize
	}
	return o.BufferSize
}
