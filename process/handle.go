package process

import (
	stderrors "errors"
	"os/exec"
	"sync"

	"github.com/kbukum/execkit/errors"
	"github.com/kbukum/execkit/logger"
)

// Handle owns the processes of a started pipeline.
//
// Wait collects every stage exactly once; calling it again returns a
// coordination error instead of touching the already-reaped processes.
type Handle struct {
	mu       sync.Mutex
	waited   bool
	cmds     []*exec.Cmd
	programs []string
	runID    string
}

func newHandle(cmds []*exec.Cmd, programs []string, runID string) *Handle {
	return &Handle{cmds: cmds, programs: programs, runID: runID}
}

// Wait blocks until every stage has exited. When several stages fail, the
// returned error reports the earliest failing one, like a shell running
// under pipefail.
func (h *Handle) Wait() error {
	return h.finish(nil)
}

func (h *Handle) lastStage() int {
	return len(h.cmds) - 1
}

// finish waits for all stages and folds in transfer errors collected by the
// calling run method. Precedence: a stage's own failure first, then transfer
// coordination failures, then transfer I/O failures, then whatever the wait
// layer itself reported.
func (h *Handle) finish(transferErrs []error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.waited {
		return errors.Coordination("pipeline already waited")
	}
	h.waited = true

	// Every stage gets waited even after a failure is found; stopping early
	// would leak the rest as zombies.
	var stageErr *errors.AppError
	for i, cmd := range h.cmds {
		err := cmd.Wait()
		if err == nil || stageErr != nil {
			continue
		}
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			stageErr = errors.NonZeroExit(i, h.programs[i], exitErr.ExitCode())
		} else {
			// Wait reports a non-exit error when feeding the stage's
			// in-memory stdin failed mid-write.
			stageErr = errors.IOFailure("stdin", i, err)
		}
	}

	var coordErr, ioErr error
	for _, e := range transferErrs {
		if e == nil {
			continue
		}
		if errors.HasCode(e, errors.ErrCodeCoordination) {
			if coordErr == nil {
				coordErr = e
			}
		} else if ioErr == nil {
			ioErr = e
		}
	}

	var result error
	switch {
	case stageErr != nil && stageErr.Code == errors.ErrCodeNonZeroExit:
		result = stageErr
	case coordErr != nil:
		result = coordErr
	case ioErr != nil:
		result = ioErr
	case stageErr != nil:
		result = stageErr
	}

	if h.runID != "" {
		log := logger.Get("process")
		if result != nil {
			log.Debug("pipeline finished", logger.Fields(
				logger.FieldRunID, h.runID,
				logger.FieldStatus, "error",
				logger.FieldError, result.Error(),
			))
		} else {
			log.Debug("pipeline finished", logger.Fields(
				logger.FieldRunID, h.runID,
				logger.FieldStatus, "ok",
			))
		}
	}

	return result
}
