package domain

import "time"

// SyncStateKind enumerates the phases of the sync state machine.
type SyncStateKind int

const (
	SyncIdle SyncStateKind = iota
	SyncInProgress
	SyncComplete
	SyncError
)

// SyncState is the observable state of one coordinator. A run moves through
// InProgress checkpoints monotonically and ends in Complete or Error; the
// next run resets it back through InProgress(0).
type SyncState struct {
	Kind     SyncStateKind
	Progress float64 // 0.0..1.0, meaningful while Kind == SyncInProgress
	Cause    error   // non-nil only when Kind == SyncError
}

func SyncStateIdle() SyncState { return SyncState{Kind: SyncIdle} }

func SyncStateInProgress(p float64) SyncState {
	return SyncState{Kind: SyncInProgress, Progress: p}
}

func SyncStateComplete() SyncState { return SyncState{Kind: SyncComplete, Progress: 1} }

func SyncStateError(cause error) SyncState { return SyncState{Kind: SyncError, Cause: cause} }

// SyncStats holds statistics about one reconciliation run.
type SyncStats struct {
	Account  AccountKind
	Fetched  int
	New      int
	Updated  int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// HasNewArticles reports whether the run ingested at least one new post.
func (s *SyncStats) HasNewArticles() bool {
	return s.New > 0
}
