package syncer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"feedsync/internal/domain"
)

func TestStateStream_ReplaysCurrentOnSubscribe(t *testing.T) {
	s := NewStateStream()

	ch, cancel := s.Subscribe()
	defer cancel()

	got := <-ch
	assert.Equal(t, domain.SyncIdle, got.Kind)

	s.Publish(domain.SyncStateInProgress(0.3))

	late, lateCancel := s.Subscribe()
	defer lateCancel()

	got = <-late
	assert.Equal(t, domain.SyncInProgress, got.Kind)
	assert.Equal(t, 0.3, got.Progress)
}

func TestStateStream_FansOut(t *testing.T) {
	s := NewStateStream()

	a, cancelA := s.Subscribe()
	b, cancelB := s.Subscribe()
	defer cancelA()
	defer cancelB()
	<-a
	<-b

	cause := errors.New("boom")
	s.Publish(domain.SyncStateError(cause))

	gotA := <-a
	gotB := <-b
	assert.Equal(t, domain.SyncError, gotA.Kind)
	assert.Equal(t, cause, gotA.Cause)
	assert.Equal(t, domain.SyncError, gotB.Kind)
}

func TestStateStream_CancelStopsDelivery(t *testing.T) {
	s := NewStateStream()

	ch, cancel := s.Subscribe()
	<-ch
	cancel()

	s.Publish(domain.SyncStateComplete())

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, domain.SyncComplete, s.Current().Kind)

	// Second cancel is a no-op.
	cancel()
}

func TestStateStream_SlowObserverDoesNotBlock(t *testing.T) {
	s := NewStateStream()

	ch, cancel := s.Subscribe()
	defer cancel()

	// Never drained: publishes beyond the buffer must not block.
	for i := 0; i < 100; i++ {
		s.Publish(domain.SyncStateInProgress(float64(i) / 100))
	}
	assert.Equal(t, 0.99, s.Current().Progress)
	assert.Equal(t, domain.SyncIdle, (<-ch).Kind)
}
