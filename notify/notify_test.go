// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/votecast/models"
)

func TestSubscribeReceivesPublishedEvents(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe()
	defer b.Unsubscribe(sub.ID)

	vote := models.Vote{ID: "v1", CandidateID: 2, Status: models.StatusPending}
	b.Publish(Event{Kind: models.EventVoteCreated, Vote: &vote})

	event := <-sub.C
	assert.Equal(t, models.EventVoteCreated, event.Kind)
	require.NotNil(t, event.Vote)
	assert.Equal(t, "v1", event.Vote.ID)
}

func TestFanOutToAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	first := b.Subscribe()
	second := b.Subscribe()
	defer b.Unsubscribe(first.ID)
	defer b.Unsubscribe(second.ID)

	require.Equal(t, 2, b.Count())

	b.Publish(Event{Kind: models.EventVotesReset})

	assert.Equal(t, models.EventVotesReset, (<-first.C).Kind)
	assert.Equal(t, models.EventVotesReset, (<-second.C).Kind)
}

func TestLateSubscriberMissesEarlierEvents(t *testing.T) {
	b := NewBroadcaster()
	b.Publish(Event{Kind: models.EventVoteCreated})

	sub := b.Subscribe()
	defer b.Unsubscribe(sub.ID)

	select {
	case event := <-sub.C:
		t.Fatalf("late subscriber received replayed event %q", event.Kind)
	default:
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe()

	b.Unsubscribe(sub.ID)
	b.Unsubscribe(sub.ID) // must not panic
	b.Unsubscribe("never-existed")

	assert.Equal(t, 0, b.Count())

	_, open := <-sub.C
	assert.False(t, open, "channel must be closed after unsubscribe")
}

func TestSlowSubscriberIsDropped(t *testing.T) {
	b := NewBroadcaster()
	slow := b.Subscribe()

	// Fill the slow subscriber's buffer without draining it. The
	// overflowing publish must drop it instead of blocking.
	for i := 0; i <= subscriberBuffer; i++ {
		b.Publish(Event{Kind: models.EventVoteCreated})
	}

	assert.Equal(t, 0, b.Count())

	for i := 0; i < subscriberBuffer; i++ {
		<-slow.C
	}
	_, open := <-slow.C
	assert.False(t, open, "dropped subscriber's channel must be closed")

	// New subscribers are unaffected by the earlier drop.
	healthy := b.Subscribe()
	defer b.Unsubscribe(healthy.ID)
	b.Publish(Event{Kind: models.EventVoteValidated})
	assert.Equal(t, models.EventVoteValidated, (<-healthy.C).Kind)
}

func TestPerSubscriberEmissionOrder(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe()
	defer b.Unsubscribe(sub.ID)

	kinds := []string{
		models.EventVoteCreated,
		models.EventVoteValidated,
		models.EventVoteRejected,
		models.EventVotesReset,
	}
	for _, kind := range kinds {
		b.Publish(Event{Kind: kind})
	}

	for _, want := range kinds {
		assert.Equal(t, want, (<-sub.C).Kind)
	}
}
