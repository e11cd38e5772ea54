// internal/status/status.go
package status

import "dnaetl/internal/etl"

// Process exit codes. 0/2/3 follow the usual CLI conventions; the
// per-kind codes give callers a distinct code per failure category.
const (
	OK         = 0
	UsageError = 2 // bad flags or arguments
	FatalInput = 3 // top-level input could not be resolved

	codeInvalidPath             = 4
	codeMalformedConfig         = 5
	codeFileUnreadable          = 6
	codeInvalidMetadataField    = 7
	codeInvalidSequenceAlphabet = 8
	codeWriteFailure            = 9

	codeUnknown = 1
)

// Code maps a failure kind to its process exit code. Every kind the
// pipeline can produce has a distinct code.
func Code(k etl.Kind) int {
	switch k {
	case etl.KindInvalidPath:
		return codeInvalidPath
	case etl.KindMalformedConfig:
		return codeMalformedConfig
	case etl.KindFileUnreadable:
		return codeFileUnreadable
	case etl.KindInvalidMetadataField:
		return codeInvalidMetadataField
	case etl.KindInvalidSequenceAlphabet:
		return codeInvalidSequenceAlphabet
	case etl.KindWriteFailure:
		return codeWriteFailure
	default:
		return codeUnknown
	}
}

// FromReport returns the exit code for a finished batch: zero when
// every record succeeded, otherwise the code of the first failure in
// submission order.
func FromReport(r etl.BatchReport) int {
	for _, o := range r {
		if o.Err != nil {
			return Code(o.Err.Kind)
		}
	}
	return OK
}
