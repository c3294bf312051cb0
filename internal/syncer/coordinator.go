package syncer

import (
	"context"
	"time"

	"feedsync/internal/domain"
)

// Coordinator drives bidirectional synchronisation against one remote
// account. Implementations serialise their own operations: a Pull issued
// while another Pull or Push is running waits for it to finish.
type Coordinator interface {
	// Pull runs a full four-phase sync: push local changes, reconcile
	// subscriptions and groups, pull new articles, reconcile statuses.
	Pull(ctx context.Context) (*domain.SyncStats, error)
	// PullFeed refreshes a single subscription's articles and statuses.
	PullFeed(ctx context.Context, feedID int64) error
	// PullFeeds refreshes the given subscriptions one after another under
	// a single lock acquisition, so no other run interleaves between them.
	PullFeeds(ctx context.Context, feedIDs []int64) error
	// PullSubscriptions reconciles subscriptions and groups without
	// touching articles.
	PullSubscriptions(ctx context.Context) error
	// Push uploads local status, subscription and group changes.
	Push(ctx context.Context) error
	// States exposes the coordinator's sync state stream.
	States() *StateStream
}

// Progress checkpoints published during a full sync.
const (
	progressStart         = 0.0
	progressPushed        = 0.3
	progressArticlesDone  = 0.7
	progressStatusesBegun = 0.9
)

// Article pull windows.
const (
	freshRSSOverlap   = 24 * time.Hour
	freshRSSMaxWindow = 30 * 24 * time.Hour
	minifluxOverlap   = 2 * time.Hour
)

// runTracked publishes the lifecycle states around one coordinator entry
// point: InProgress(0) before the work, then Error or Complete. The stream
// rests on the final state until the next run starts.
func runTracked(stream *StateStream, fn func() error) error {
	stream.Publish(domain.SyncStateInProgress(progressStart))
	if err := fn(); err != nil {
		stream.Publish(domain.SyncStateError(err))
		return err
	}
	stream.Publish(domain.SyncStateComplete())
	return nil
}

func chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}
