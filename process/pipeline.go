package process

import (
	"fmt"
	"io"
	"os"

	"github.com/kbukum/execkit/echo"
	"github.com/kbukum/execkit/errors"
)

// pipeMode says which streams of the previous stage feed a stage's stdin.
type pipeMode int

const (
	pipeStdout pipeMode = iota
	pipeStderr
	pipeBoth
)

func (m pipeMode) connector() string {
	switch m {
	case pipeStderr:
		return echo.ConnectorStderr
	case pipeBoth:
		return echo.ConnectorBoth
	default:
		return echo.ConnectorStdout
	}
}

// stage is one command in a pipeline. mode describes how the stage receives
// its stdin from the stage before it; it is meaningless on the first stage.
type stage struct {
	cmd  Command
	mode pipeMode
}

// Pipeline is an ordered chain of commands whose streams are connected by
// operating-system pipes. Like Command it is a value builder; the chaining
// methods return extended copies.
//
// An empty pipeline runs no processes and succeeds trivially.
type Pipeline struct {
	stages       []stage
	input        *inputSource
	suppressEcho bool
}

// Pipe appends next, wiring the current last stage's stdout to its stdin.
func (p Pipeline) Pipe(next Command) Pipeline {
	return p.extend(next, pipeStdout)
}

// PipeErr appends next, wiring the current last stage's stderr to its stdin.
func (p Pipeline) PipeErr(next Command) Pipeline {
	return p.extend(next, pipeStderr)
}

// PipeOutErr appends next, wiring both stdout and stderr of the current last
// stage to its stdin.
func (p Pipeline) PipeOutErr(next Command) Pipeline {
	return p.extend(next, pipeBoth)
}

func (p Pipeline) extend(next Command, mode pipeMode) Pipeline {
	stages := make([]stage, len(p.stages), len(p.stages)+1)
	copy(stages, p.stages)
	p.stages = append(stages, stage{cmd: next, mode: mode})
	// Echo suppression is sticky: one silenced stage silences the whole chain.
	p.suppressEcho = p.suppressEcho || next.noEcho
	return p
}

// NoEcho suppresses the command-echo line for this pipeline.
func (p Pipeline) NoEcho() Pipeline {
	p.suppressEcho = true
	return p
}

// Input feeds r to the first stage's stdin when a blocking run method
// executes the pipeline. The spawn methods ignore it.
func (p Pipeline) Input(r io.Reader) Pipeline {
	p.input = &inputSource{kind: inputReader, reader: r}
	return p
}

// InputBytes feeds b to the first stage's stdin when a blocking run method
// executes the pipeline.
func (p Pipeline) InputBytes(b []byte) Pipeline {
	p.input = &inputSource{kind: inputBytes, data: append([]byte(nil), b...)}
	return p
}

// InputString feeds s to the first stage's stdin when a blocking run method
// executes the pipeline.
func (p Pipeline) InputString(s string) Pipeline {
	return p.InputBytes([]byte(s))
}

// validate rejects pipelines that cannot be started: a stage without a
// program, input attached to a non-initial stage, or a nil input reader.
func (p Pipeline) validate() error {
	for i, st := range p.stages {
		if st.cmd.program == "" {
			return errors.InvalidPipeline(fmt.Sprintf("stage %d has an empty program", i))
		}
		if i > 0 && st.cmd.input != nil {
			return errors.InvalidInput("input", fmt.Sprintf("stage %d cannot take input; only the first stage reads the pipeline input", i))
		}
	}
	if p.input != nil && p.input.kind == inputReader && p.input.reader == nil {
		return errors.InvalidInput("input", "nil input reader")
	}
	return nil
}

func (p Pipeline) lastStage() int {
	return len(p.stages) - 1
}

// echo prints the command-echo line for this pipeline to stderr. It is a
// no-op when a stage was built with NoEcho or the NO_ECHO variable is set.
func (p Pipeline) echo() {
	if p.suppressEcho || len(p.stages) == 0 {
		return
	}
	echo.Pipeline(os.Stderr, echo.CommandStyle(), p.echoStages())
}

// echoStages converts the pipeline to its display form. The connector shown
// before a stage comes from that stage's own pipe mode.
func (p Pipeline) echoStages() []echo.Stage {
	out := make([]echo.Stage, len(p.stages))
	for i, st := range p.stages {
		es := echo.Stage{
			Dir:     st.cmd.dir,
			Program: st.cmd.program,
			Args:    st.cmd.args,
		}
		if i > 0 {
			es.Connector = st.mode.connector()
		}
		for _, ev := range st.cmd.env {
			es.Env = append(es.Env, echo.EnvVar{Key: ev.key, Value: ev.value})
		}
		out[i] = es
	}
	return out
}
