// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reconcile implements the participant-side reconciliation
client.

The client periodically re-pulls the full vote list and candidate
catalog and recomputes derived view state: total and per-candidate
confirmed counts, percentages, and the status of the participant's own
vote. It does not depend on the push channel: an event missed while
disconnected is picked up within one polling interval. It can
additionally consume the /events stream to refresh sooner:

	c := reconcile.New(reconcile.Config{BaseURL: url, VoterToken: tok})
	go c.Run(ctx)
	go c.Listen(ctx)
	...
	s := c.Summary()

A transition of the tracked vote into confirmed arms a one-shot
confirmation signal that Summary reports for SignalTTL; re-observing
confirmed on later polls never re-arms it. A tracked vote that
disappears (administrative reset) is treated as "no vote yet".
*/
package reconcile
