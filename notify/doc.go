// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify implements the push notification channel.

Broadcaster is an injected registry, not ambient global state, so it
can be constructed per server (and per test) with explicit lifecycle:

	b := notify.NewBroadcaster()
	sub := b.Subscribe()
	defer b.Unsubscribe(sub.ID)
	b.Publish(notify.Event{Kind: models.EventVoteCreated, Vote: &vote})

Guarantees are deliberately weak: at-most-once per subscriber per
emission, no replay, no persistence. A subscriber connecting after an
event never receives it; clients resynchronize through the
reconciliation poll instead. A subscriber whose buffer is full is
dropped on the next publish attempt so one dead connection cannot
stall the rest.
*/
package notify
