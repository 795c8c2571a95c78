// Package pipelineerr defines the error taxonomy shared by every stage.
//
// Errors are package-level sentinels, the same style the teacher index
// uses for ErrNoPostingList and friends, so callers can compare with
// errors.Is instead of parsing messages.
package pipelineerr

import "errors"

// Kind identifies which class of error spec §7 assigns an exit code to.
type Kind int

const (
	KindInputAbsent Kind = iota
	KindMalformedDocument
	KindVocabularyMiss
	KindDuplicateDocID
	KindUnsortedPositions
	KindWriteFailure
	KindConfigOutOfRange
	KindCorruption
)

// Sentinel errors, compared with errors.Is at the stage boundary.
var (
	ErrInputAbsent       = errors.New("pipelineerr: input not found")
	ErrVocabularyMiss    = errors.New("pipelineerr: token produced by tokenizer has no lexicon entry")
	ErrDuplicateDocID    = errors.New("pipelineerr: duplicate doc_id within a token's postings")
	ErrUnsortedPositions = errors.New("pipelineerr: positions within a posting are not strictly increasing")
	ErrWriteFailure      = errors.New("pipelineerr: short or failed write")
	ErrConfigOutOfRange  = errors.New("pipelineerr: configuration value out of range")
	ErrCorruption        = errors.New("pipelineerr: artifact failed validation on read-back")
)

// ExitCode maps a Kind to the exit codes in spec §6.
func ExitCode(k Kind) int {
	switch k {
	case KindConfigOutOfRange:
		return 2
	case KindInputAbsent:
		return 3
	case KindDuplicateDocID, KindUnsortedPositions, KindCorruption, KindVocabularyMiss:
		return 4
	case KindWriteFailure:
		return 5
	default:
		return 1
	}
}

// Error wraps a stage failure with enough context to print spec §7's
// "single summary line naming the stage, the error kind, and the
// offending record identifier when applicable".
type Error struct {
	Stage  string
	Kind   Kind
	Record string // offending identifier, empty if not applicable
	Err    error
}

func (e *Error) Error() string {
	if e.Record == "" {
		return e.Stage + ": " + e.Err.Error()
	}
	return e.Stage + ": " + e.Err.Error() + " (record: " + e.Record + ")"
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a stage error.
func New(stage string, kind Kind, record string, err error) *Error {
	return &Error{Stage: stage, Kind: kind, Record: record, Err: err}
}
