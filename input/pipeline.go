package input

import (
	"io"

	"github.com/intel/forGoParallel/parallel"
)

type chunk struct {
	data []byte
	err  error
}

// Pipeline reads r in chunks of bufferSize bytes on one goroutine while
// consume reads the same bytes, in the same order, on another. Only two
// chunk buffers are ever allocated: one being filled, one being consumed.
// Read errors from r reach consume after the bytes preceding them. Pipeline
// returns the result of consume.
func Pipeline(r io.Reader, bufferSize int, consume func(io.Reader) error) error {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	free := make(chan []byte, 2)
	free <- make([]byte, bufferSize)
	free <- make([]byte, bufferSize)
	filled := make(chan chunk, 1)
	done := make(chan struct{})
	var err error
	parallel.Do(func() {
		defer close(filled)
		for {
			var buf []byte
			select {
			case buf = <-free:
			case <-done:
				return
			}
			n, e := io.ReadFull(r, buf)
			if e == io.ErrUnexpectedEOF {
				e = io.EOF
			}
			select {
			case filled <- chunk{data: buf[:n], err: e}:
			case <-done:
				return
			}
			if e != nil {
				return
			}
		}
	}, func() {
		defer close(done)
		err = consume(&chunkReader{filled: filled, free: free})
	})
	return err
}

type chunkReader struct {
	filled <-chan chunk
	free   chan<- []byte
	cur    chunk
	off    int
	held   bool
}

func (c *chunkReader) Read(p []byte) (int, error) {
	for c.off == len(c.cur.data) {
		if c.cur.err != nil {
			return 0, c.cur.err
		}
		if c.held {
			c.free <- c.cur.data[:cap(c.cur.data)]
			c.held = false
		}
		next, ok := <-c.filled
		if !ok {
			return 0, io.EOF
		}
		c.cur, c.off, c.held = next, 0, true
	}
	n := copy(p, c.cur.data[c.off:])
	c.off += n
	return n, nil
}
