package process

import (
	"fmt"
	"io"
	"strings"

	"github.com/kbukum/execkit/errors"
)

// Run executes the pipeline and waits for every stage to finish. The
// standard streams are inherited from the parent process, except stdin when
// builder input was provided.
func (p Pipeline) Run() error {
	in, opts := p.inputOptions(launchOptions{})
	sp, err := p.launch(opts)
	if err != nil {
		return err
	}
	var transfer []error
	if in != nil && sp.Stdin != nil {
		transfer = append(transfer, startRelay(sp.Stdin, in, "stdin", 0).wait())
	}
	return sp.Handle.finish(transfer)
}

// OutputBytes executes the pipeline capturing the last stage's stdout and
// returns it once every stage has exited. All other streams are inherited.
// The bytes collected so far are returned alongside the error when the
// pipeline fails.
func (p Pipeline) OutputBytes() ([]byte, error) {
	in, opts := p.inputOptions(launchOptions{pipeStdout: true})
	sp, err := p.launch(opts)
	if err != nil {
		return nil, err
	}
	var rel *relay
	if in != nil && sp.Stdin != nil {
		rel = startRelay(sp.Stdin, in, "stdin", 0)
	}
	var data []byte
	var transfer []error
	if sp.Stdout != nil {
		var readErr error
		data, readErr = io.ReadAll(sp.Stdout)
		sp.Stdout.Close()
		if readErr != nil {
			transfer = append(transfer, errors.IOFailure("stdout", p.lastStage(), readErr))
		}
	}
	if rel != nil {
		transfer = append(transfer, rel.wait())
	}
	if err := sp.Handle.finish(transfer); err != nil {
		return data, err
	}
	return data, nil
}

// Output is OutputBytes decoded as UTF-8 text; invalid bytes are replaced
// with U+FFFD.
func (p Pipeline) Output() (string, error) {
	b, err := p.OutputBytes()
	return toText(b), err
}

// StdoutTo executes the pipeline, streaming the last stage's stdout into w.
func (p Pipeline) StdoutTo(w io.Writer) error {
	in, opts := p.inputOptions(launchOptions{pipeStdout: true})
	return p.streamOut(opts, pickStdout, "stdout", in, w)
}

// StderrTo executes the pipeline, streaming the last stage's stderr into w.
func (p Pipeline) StderrTo(w io.Writer) error {
	in, opts := p.inputOptions(launchOptions{pipeStderr: true})
	return p.streamOut(opts, pickStderr, "stderr", in, w)
}

// CombinedTo executes the pipeline, streaming the last stage's stdout and
// stderr into w. Both streams share one pipe, so their interleaving is
// decided by the order of the stage's writes.
func (p Pipeline) CombinedTo(w io.Writer) error {
	in, opts := p.inputOptions(launchOptions{merged: true})
	return p.streamOut(opts, pickStdout, "stdout", in, w)
}

// RunWithIO executes the pipeline with r feeding the first stage's stdin and
// w receiving the last stage's stdout. It overrides any builder input.
func (p Pipeline) RunWithIO(r io.Reader, w io.Writer) error {
	if r == nil {
		return errors.InvalidInput("reader", "nil reader")
	}
	return p.streamOut(launchOptions{pipeStdin: true, pipeStdout: true}, pickStdout, "stdout", r, w)
}

// RunWithErrIO executes the pipeline with r feeding the first stage's stdin
// and w receiving the last stage's stderr.
func (p Pipeline) RunWithErrIO(r io.Reader, w io.Writer) error {
	if r == nil {
		return errors.InvalidInput("reader", "nil reader")
	}
	return p.streamOut(launchOptions{pipeStdin: true, pipeStderr: true}, pickStderr, "stderr", r, w)
}

// RunWithBothIO executes the pipeline with r feeding the first stage's stdin
// and w receiving its combined stdout and stderr.
func (p Pipeline) RunWithBothIO(r io.Reader, w io.Writer) error {
	if r == nil {
		return errors.InvalidInput("reader", "nil reader")
	}
	return p.streamOut(launchOptions{pipeStdin: true, merged: true}, pickStdout, "stdout", r, w)
}

func pickStdout(s *Spawn) io.ReadCloser { return s.Stdout }
func pickStderr(s *Spawn) io.ReadCloser { return s.Stderr }

// streamOut is the shared body of the streaming run methods: launch, relay
// stdin on a side goroutine when present, copy the picked output stream on
// the calling goroutine, then settle the pipeline.
func (p Pipeline) streamOut(opts launchOptions, pick func(*Spawn) io.ReadCloser, direction string, stdin io.Reader, w io.Writer) error {
	sp, err := p.launch(opts)
	if err != nil {
		return err
	}
	var rel *relay
	if stdin != nil && sp.Stdin != nil {
		rel = startRelay(sp.Stdin, stdin, "stdin", 0)
	}
	var transfer []error
	if src := pick(sp); src != nil {
		if err := p.transfer(w, src, direction); err != nil {
			transfer = append(transfer, err)
		}
	}
	if rel != nil {
		transfer = append(transfer, rel.wait())
	}
	return sp.Handle.finish(transfer)
}

// transfer copies src into w on the calling goroutine. On a write failure
// the rest of src is drained, so the producing stage is not left blocked on
// a full pipe before Wait; a panicking writer is contained the same way.
func (p Pipeline) transfer(w io.Writer, src io.ReadCloser, direction string) (err error) {
	stage := p.lastStage()
	defer func() {
		if rec := recover(); rec != nil {
			_, _ = io.Copy(io.Discard, src)
			src.Close()
			err = errors.Coordination(fmt.Sprintf("%s writer panicked: %v", direction, rec))
		}
	}()
	if _, cErr := io.Copy(w, src); cErr != nil {
		_, _ = io.Copy(io.Discard, src)
		src.Close()
		return errors.IOFailure(direction, stage, cErr)
	}
	src.Close()
	return nil
}

// inputOptions folds builder input into the launch options. A reader input
// is returned for the caller to relay; in-memory input rides along inside
// the options.
func (p Pipeline) inputOptions(opts launchOptions) (io.Reader, launchOptions) {
	if p.input == nil {
		return nil, opts
	}
	switch p.input.kind {
	case inputBytes:
		opts.stdinData = p.input.data
		opts.hasData = true
		return nil, opts
	case inputReader:
		opts.pipeStdin = true
		return p.input.reader, opts
	}
	return nil, opts
}

// toText decodes process output as UTF-8, replacing invalid sequences so
// the result is always printable.
func toText(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
