package process

import (
	stderrors "errors"
	"fmt"
	"io"
	"syscall"

	"github.com/kbukum/execkit/errors"
)

// relayChunk is the transfer buffer size for stdin relays.
const relayChunk = 32 * 1024

// relay pumps a caller-supplied reader into a stage's stdin on its own
// goroutine, so the caller can keep reading the pipeline's output at the
// same time.
type relay struct {
	direction string
	stage     int
	done      chan struct{}
	err       error
}

// startRelay begins pumping src into dst. dst is closed when the relay
// finishes so the stage sees EOF.
func startRelay(dst io.WriteCloser, src io.Reader, direction string, stage int) *relay {
	r := &relay{direction: direction, stage: stage, done: make(chan struct{})}
	go r.pump(dst, src)
	return r
}

// wait blocks until the relay has finished and returns its error, if any.
func (r *relay) wait() error {
	<-r.done
	return r.err
}

func (r *relay) pump(dst io.WriteCloser, src io.Reader) {
	defer close(r.done)
	defer func() {
		if rec := recover(); rec != nil {
			r.err = errors.Coordination(fmt.Sprintf("%s relay panicked: %v", r.direction, rec))
		}
	}()
	defer dst.Close()

	buf := make([]byte, relayChunk)
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, writeErr := dst.Write(buf[:n]); writeErr != nil {
				// A broken pipe just means the stage stopped reading, e.g.
				// head after its line quota; the stage's own exit status
				// carries the verdict. Stopping here, rather than draining
				// src, keeps an endless source from hanging the run.
				if !isBrokenPipe(writeErr) {
					r.err = errors.IOFailure(r.direction, r.stage, writeErr)
				}
				return
			}
		}
		if readErr == io.EOF {
			return
		}
		if readErr != nil {
			r.err = errors.IOFailure(r.direction, r.stage, readErr)
			return
		}
	}
}

// isBrokenPipe reports whether err is the write-after-close error a pipe
// returns once its reading end is gone.
func isBrokenPipe(err error) bool {
	return stderrors.Is(err, syscall.EPIPE)
}
