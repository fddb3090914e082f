// Package process runs external programs, either alone or chained into
// pipelines whose stages are connected by operating-system pipes and run
// concurrently, the way a shell runs cmd1 | cmd2 | cmd3.
//
// Command and Pipeline are value builders: every method returns a modified
// copy, so a configured command can serve as the base for several variants.
// Pipe connects a stage's stdout to the next stage's stdin, PipeErr its
// stderr, and PipeOutErr both at once.
//
// The blocking methods start all stages, move the requested streams, and
// wait for every stage to exit. When several stages fail, the earliest
// failing stage is reported, like a shell running under pipefail. The spawn
// methods instead hand back the live pipe ends for callers that drive the
// processes themselves.
//
// Unless suppressed with NoEcho or the NO_ECHO environment variable, each
// executed pipeline is echoed to stderr in shell syntax before it starts.
//
// # Basic Usage
//
//	err := process.New("make", "all").Dir("build").Run()
//
//	out, err := process.New("git", "rev-parse", "HEAD").Output()
//
// # Pipelines
//
//	out, err := process.New("dmesg").
//	    Pipe(process.New("grep", "usb")).
//	    Pipe(process.New("wc", "-l")).
//	    Output()
//
// # Feeding Input
//
//	err = process.New("sort").
//	    InputString("b\na\nc\n").
//	    StdoutTo(os.Stdout)
//
// # Spawning
//
//	sp, err := process.New("cat").SpawnInOut()
//	if err != nil {
//	    return err
//	}
//	io.WriteString(sp.Stdin, "hello\n")
//	sp.Stdin.Close()
//	out, err := sp.Output()
package process
