package process

import (
	"io"
)

// Command describes a single external program invocation. It is a value
// builder: every method returns a modified copy, so a command can be built
// once and reused as the base for several variants without them affecting
// each other.
//
// The zero value is not runnable; start from New.
type Command struct {
	program string
	args    []string
	env     []envVar
	dir     string
	noEcho  bool
	input   *inputSource
}

// envVar is one environment assignment, kept in insertion order.
// When the same key is set twice the later value wins.
type envVar struct {
	key   string
	value string
}

type inputKind int

const (
	inputNone inputKind = iota
	inputBytes
	inputReader
)

// inputSource feeds the first stage's stdin for the blocking run methods.
type inputSource struct {
	kind   inputKind
	data   []byte
	reader io.Reader
}

// New creates a command for program with optional initial arguments.
func New(program string, args ...string) Command {
	return Command{
		program: program,
		args:    append([]string(nil), args...),
	}
}

// Arg appends a single argument.
func (c Command) Arg(arg string) Command {
	c.args = append(cloneStrings(c.args), arg)
	return c
}

// Args appends multiple arguments.
func (c Command) Args(args ...string) Command {
	c.args = append(cloneStrings(c.args), args...)
	return c
}

// Env sets an environment variable for this command on top of the parent
// environment. Setting the same key again overrides the earlier value.
func (c Command) Env(key, value string) Command {
	env := make([]envVar, len(c.env), len(c.env)+1)
	copy(env, c.env)
	c.env = append(env, envVar{key: key, value: value})
	return c
}

// Dir sets the working directory the command starts in.
func (c Command) Dir(dir string) Command {
	c.dir = dir
	return c
}

// NoEcho suppresses the command-echo line for any pipeline this command
// becomes part of.
func (c Command) NoEcho() Command {
	c.noEcho = true
	return c
}

// Input feeds r to the command's stdin when one of the blocking run methods
// executes it. The spawn methods ignore it; they leave stdin to the caller.
func (c Command) Input(r io.Reader) Command {
	c.input = &inputSource{kind: inputReader, reader: r}
	return c
}

// InputBytes feeds b to the command's stdin when one of the blocking run
// methods executes it.
func (c Command) InputBytes(b []byte) Command {
	c.input = &inputSource{kind: inputBytes, data: append([]byte(nil), b...)}
	return c
}

// InputString feeds s to the command's stdin when one of the blocking run
// methods executes it.
func (c Command) InputString(s string) Command {
	return c.InputBytes([]byte(s))
}

// Pipe connects this command's stdout to next's stdin.
func (c Command) Pipe(next Command) Pipeline {
	return c.pipeline().Pipe(next)
}

// PipeErr connects this command's stderr to next's stdin; stdout keeps
// flowing to its usual destination.
func (c Command) PipeErr(next Command) Pipeline {
	return c.pipeline().PipeErr(next)
}

// PipeOutErr connects both this command's stdout and stderr to next's stdin.
func (c Command) PipeOutErr(next Command) Pipeline {
	return c.pipeline().PipeOutErr(next)
}

// pipeline wraps the command as a single-stage pipeline. Builder input and
// echo suppression carry over.
func (c Command) pipeline() Pipeline {
	return Pipeline{
		stages:       []stage{{cmd: c}},
		input:        c.input,
		suppressEcho: c.noEcho,
	}
}

// Run executes the command and waits for it to finish.
func (c Command) Run() error {
	return c.pipeline().Run()
}

// Output executes the command and returns its captured stdout as a string.
func (c Command) Output() (string, error) {
	return c.pipeline().Output()
}

// OutputBytes executes the command and returns its captured stdout.
func (c Command) OutputBytes() ([]byte, error) {
	return c.pipeline().OutputBytes()
}

// StdoutTo executes the command, streaming its stdout into w.
func (c Command) StdoutTo(w io.Writer) error {
	return c.pipeline().StdoutTo(w)
}

// StderrTo executes the command, streaming its stderr into w.
func (c Command) StderrTo(w io.Writer) error {
	return c.pipeline().StderrTo(w)
}

// CombinedTo executes the command, streaming stdout and stderr interleaved
// into w.
func (c Command) CombinedTo(w io.Writer) error {
	return c.pipeline().CombinedTo(w)
}

// RunWithIO executes the command with r as stdin and w receiving stdout.
func (c Command) RunWithIO(r io.Reader, w io.Writer) error {
	return c.pipeline().RunWithIO(r, w)
}

// RunWithErrIO executes the command with r as stdin and w receiving stderr.
func (c Command) RunWithErrIO(r io.Reader, w io.Writer) error {
	return c.pipeline().RunWithErrIO(r, w)
}

// RunWithBothIO executes the command with r as stdin and w receiving stdout
// and stderr interleaved.
func (c Command) RunWithBothIO(r io.Reader, w io.Writer) error {
	return c.pipeline().RunWithBothIO(r, w)
}

// SpawnIO starts the command with the selected streams piped back to the
// caller.
func (c Command) SpawnIO(capture Streams) (*Spawn, error) {
	return c.pipeline().SpawnIO(capture)
}

// Spawn starts the command with all streams inherited.
func (c Command) Spawn() (*Spawn, error) {
	return c.pipeline().Spawn()
}

// SpawnIn starts the command with stdin piped to the caller.
func (c Command) SpawnIn() (*Spawn, error) {
	return c.pipeline().SpawnIn()
}

// SpawnOut starts the command with stdout piped to the caller.
func (c Command) SpawnOut() (*Spawn, error) {
	return c.pipeline().SpawnOut()
}

// SpawnErr starts the command with stderr piped to the caller.
func (c Command) SpawnErr() (*Spawn, error) {
	return c.pipeline().SpawnErr()
}

// SpawnInOut starts the command with stdin and stdout piped to the caller.
func (c Command) SpawnInOut() (*Spawn, error) {
	return c.pipeline().SpawnInOut()
}

// SpawnInErr starts the command with stdin and stderr piped to the caller.
func (c Command) SpawnInErr() (*Spawn, error) {
	return c.pipeline().SpawnInErr()
}

// SpawnOutErr starts the command with stdout and stderr piped to the caller.
func (c Command) SpawnOutErr() (*Spawn, error) {
	return c.pipeline().SpawnOutErr()
}

// SpawnAll starts the command with all three standard streams piped to the
// caller.
func (c Command) SpawnAll() (*Spawn, error) {
	return c.pipeline().SpawnAll()
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s), len(s)+1)
	copy(out, s)
	return out
}
