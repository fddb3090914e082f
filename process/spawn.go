package process

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/execkit/errors"
	"github.com/kbukum/execkit/logger"
	"github.com/kbukum/execkit/util"
)

// Streams selects which ends of a pipeline the caller wants piped back:
// the first stage's stdin and the last stage's stdout and stderr.
type Streams struct {
	Stdin  bool
	Stdout bool
	Stderr bool
}

// Spawn is a started pipeline together with whichever stream ends were
// requested; streams that were not requested are nil.
//
// The caller owns the returned pipe ends: close Stdin to deliver EOF to the
// first stage, and read Stdout and Stderr promptly so no stage blocks on a
// full pipe. Wait, Output or OutputBytes must be called exactly once to
// release the children.
type Spawn struct {
	Handle *Handle

	// Stdin is the write end of the first stage's stdin, when requested.
	Stdin io.WriteCloser
	// Stdout is the read end of the last stage's stdout, when requested.
	Stdout io.ReadCloser
	// Stderr is the read end of the last stage's stderr, when requested.
	Stderr io.ReadCloser
}

// Wait blocks until every stage has exited and returns the aggregated
// pipeline result.
func (s *Spawn) Wait() error {
	return s.Handle.Wait()
}

// OutputBytes reads the captured stdout to EOF, then waits for the pipeline.
// The bytes collected so far are returned even when the pipeline fails, so
// callers can inspect partial output alongside the error.
func (s *Spawn) OutputBytes() ([]byte, error) {
	if s.Stdout == nil {
		return nil, errors.StreamNotCaptured("stdout")
	}
	data, readErr := io.ReadAll(s.Stdout)
	s.Stdout.Close()
	var transfer []error
	if readErr != nil {
		transfer = append(transfer, errors.IOFailure("stdout", s.Handle.lastStage(), readErr))
	}
	if err := s.Handle.finish(transfer); err != nil {
		return data, err
	}
	return data, nil
}

// Output is OutputBytes decoded as UTF-8 text; invalid bytes are replaced
// with U+FFFD.
func (s *Spawn) Output() (string, error) {
	b, err := s.OutputBytes()
	return toText(b), err
}

// SpawnIO starts the pipeline with the streams selected by capture piped
// back to the caller; unselected streams are inherited from the parent.
// Builder input is ignored here: when stdin was requested, feeding and
// closing it is the caller's job.
func (p Pipeline) SpawnIO(capture Streams) (*Spawn, error) {
	return p.launch(launchOptions{
		pipeStdin:  capture.Stdin,
		pipeStdout: capture.Stdout,
		pipeStderr: capture.Stderr,
	})
}

// Spawn starts the pipeline with all streams inherited.
func (p Pipeline) Spawn() (*Spawn, error) {
	return p.SpawnIO(Streams{})
}

// SpawnIn starts the pipeline with stdin piped to the caller.
func (p Pipeline) SpawnIn() (*Spawn, error) {
	return p.SpawnIO(Streams{Stdin: true})
}

// SpawnOut starts the pipeline with stdout piped to the caller.
func (p Pipeline) SpawnOut() (*Spawn, error) {
	return p.SpawnIO(Streams{Stdout: true})
}

// SpawnErr starts the pipeline with stderr piped to the caller.
func (p Pipeline) SpawnErr() (*Spawn, error) {
	return p.SpawnIO(Streams{Stderr: true})
}

// SpawnInOut starts the pipeline with stdin and stdout piped to the caller.
func (p Pipeline) SpawnInOut() (*Spawn, error) {
	return p.SpawnIO(Streams{Stdin: true, Stdout: true})
}

// SpawnInErr starts the pipeline with stdin and stderr piped to the caller.
func (p Pipeline) SpawnInErr() (*Spawn, error) {
	return p.SpawnIO(Streams{Stdin: true, Stderr: true})
}

// SpawnOutErr starts the pipeline with stdout and stderr piped to the caller.
func (p Pipeline) SpawnOutErr() (*Spawn, error) {
	return p.SpawnIO(Streams{Stdout: true, Stderr: true})
}

// SpawnAll starts the pipeline with all three standard streams piped to the
// caller.
func (p Pipeline) SpawnAll() (*Spawn, error) {
	return p.SpawnIO(Streams{Stdin: true, Stdout: true, Stderr: true})
}

// launchOptions is the internal superset of Streams. The blocking run
// methods additionally need in-memory stdin and a merged stdout+stderr pipe.
type launchOptions struct {
	pipeStdin  bool
	pipeStdout bool
	pipeStderr bool

	// merged wires one shared pipe to both stdout and stderr of the last
	// stage and exposes its read end as Spawn.Stdout. The kernel interleaves
	// the two streams at write granularity; no user-space locking is needed.
	merged bool

	// stdinData wires an in-memory buffer to the first stage's stdin.
	stdinData []byte
	hasData   bool
}

// launch builds the pipe topology, starts every stage and hands back the
// caller-side stream ends. Each stage holds duplicates of its descriptors
// once started, so the parent closes its own copies immediately; that is
// what lets EOF travel down the chain when a stage exits.
func (p Pipeline) launch(opts launchOptions) (*Spawn, error) {
	p.echo()

	if err := p.validate(); err != nil {
		return nil, err
	}

	n := len(p.stages)
	sp := &Spawn{Handle: newHandle(nil, nil, "")}
	if n == 0 {
		return sp, nil
	}

	runID := uuid.NewString()
	log := logger.Get("process")

	// Every parent-side descriptor created below, so a failed start can
	// release them all in one sweep.
	var opened []*os.File
	newPipe := func() (r, w *os.File, err error) {
		r, w, err = os.Pipe()
		if err != nil {
			return nil, nil, err
		}
		opened = append(opened, r, w)
		return r, w, nil
	}
	pipeFail := func(what string, err error) (*Spawn, error) {
		closeFiles(opened)
		return nil, errors.Coordination("cannot create " + what).WithCause(err)
	}

	// Boundary pipes between consecutive stages. bounds[i] carries data from
	// stage i to stage i+1; which streams of stage i feed its write end is
	// decided by stage i+1's pipe mode.
	type boundary struct{ r, w *os.File }
	bounds := make([]boundary, n-1)
	for i := range bounds {
		r, w, err := newPipe()
		if err != nil {
			return pipeFail(fmt.Sprintf("pipe between stages %d and %d", i, i+1), err)
		}
		bounds[i] = boundary{r: r, w: w}
	}

	cmds := make([]*exec.Cmd, n)
	programs := make([]string, n)

	// parentFiles[i] holds the descriptors stage i inherits; the parent
	// closes them as soon as the stage has started.
	parentFiles := make([][]*os.File, n)

	for i, st := range p.stages {
		cmd := exec.Command(st.cmd.program, st.cmd.args...) //nolint:gosec // running caller-supplied programs is the whole point
		if st.cmd.dir != "" {
			cmd.Dir = st.cmd.dir
		}
		if len(st.cmd.env) > 0 {
			cmd.Env = append(os.Environ(), envPairs(st.cmd.env)...)
		}

		if i == 0 {
			switch {
			case opts.pipeStdin:
				r, w, err := newPipe()
				if err != nil {
					return pipeFail("stdin pipe", err)
				}
				cmd.Stdin = r
				sp.Stdin = w
				parentFiles[i] = append(parentFiles[i], r)
			case opts.hasData:
				cmd.Stdin = bytes.NewReader(opts.stdinData)
			default:
				cmd.Stdin = os.Stdin
			}
		} else {
			cmd.Stdin = bounds[i-1].r
			parentFiles[i] = append(parentFiles[i], bounds[i-1].r)
		}

		if i < n-1 {
			b := bounds[i]
			switch p.stages[i+1].mode {
			case pipeStderr:
				cmd.Stdout = os.Stdout
				cmd.Stderr = b.w
			case pipeBoth:
				cmd.Stdout = b.w
				cmd.Stderr = b.w
			default:
				cmd.Stdout = b.w
				cmd.Stderr = os.Stderr
			}
			parentFiles[i] = append(parentFiles[i], b.w)
		} else if opts.merged {
			r, w, err := newPipe()
			if err != nil {
				return pipeFail("merged output pipe", err)
			}
			cmd.Stdout = w
			cmd.Stderr = w
			sp.Stdout = r
			parentFiles[i] = append(parentFiles[i], w)
		} else {
			if opts.pipeStdout {
				r, w, err := newPipe()
				if err != nil {
					return pipeFail("stdout pipe", err)
				}
				cmd.Stdout = w
				sp.Stdout = r
				parentFiles[i] = append(parentFiles[i], w)
			} else {
				cmd.Stdout = os.Stdout
			}
			if opts.pipeStderr {
				r, w, err := newPipe()
				if err != nil {
					return pipeFail("stderr pipe", err)
				}
				cmd.Stderr = w
				sp.Stderr = r
				parentFiles[i] = append(parentFiles[i], w)
			} else {
				cmd.Stderr = os.Stderr
			}
		}

		cmds[i] = cmd
		programs[i] = st.cmd.program
	}

	log.Debug("pipeline starting", logger.Fields(
		logger.FieldRunID, runID,
		"stages", n,
	))

	for i, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			closeFiles(opened)
			reap(cmds[:i])
			return nil, errors.SpawnFailed(i, programs[i], err)
		}
		closeFiles(parentFiles[i])
		log.Debug("stage started", logger.Fields(
			logger.FieldRunID, runID,
			logger.FieldStage, i,
			logger.FieldProgram, programs[i],
			"pid", cmd.Process.Pid,
			"args", util.Truncate(strings.Join(p.stages[i].cmd.args, " "), 120),
		))
	}

	sp.Handle = newHandle(cmds, programs, runID)
	return sp, nil
}

func closeFiles(files []*os.File) {
	for _, f := range files {
		f.Close()
	}
}

// reap kills and waits the stages that did start after a later stage failed
// to. The pipeline cannot proceed, so there is no point letting them run on
// half-closed pipes.
func reap(cmds []*exec.Cmd) {
	for _, cmd := range cmds {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		_ = cmd.Wait()
	}
}

func envPairs(vars []envVar) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v.key + "=" + v.value
	}
	return out
}
