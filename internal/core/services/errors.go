package services

import "fmt"

// ErrorKind classifies a stage failure so the pipeline driver can
// decide between halting and continuing.
type ErrorKind string

const (
	// KindTransientNetwork covers acquisition failures; the run
	// continues on files from a previous run.
	KindTransientNetwork ErrorKind = "transient-network"
	// KindMissingInput covers absent or unreadable input files; fatal.
	KindMissingInput ErrorKind = "missing-input"
	// KindStorage covers store writes and report reads; fatal.
	KindStorage ErrorKind = "storage"
	// KindRender covers chart and workbook output; fatal.
	KindRender ErrorKind = "render"
)

// StageError wraps a stage failure with its stage name and kind.
type StageError struct {
	Stage string
	Kind  ErrorKind
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage (%s): %v", e.Stage, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, kind ErrorKind, err error) *StageError {
	return &StageError{Stage: stage, Kind: kind, Err: err}
}
