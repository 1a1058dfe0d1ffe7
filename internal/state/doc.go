// Package state holds the widget's mutable state: the search text, the
// current lookup result, the captured party and the notification outbox.
//
// # Ownership
//
// A single Store instance owns everything. Its methods are the only
// mutators; callers read through Snapshot (or the narrower accessors), all
// of which return copies, so a rendered frame can never alias live state.
//
// # Lookups
//
// A lookup is split in two so the network wait can happen outside the store:
//
//	req, err := store.BeginSearch(raw)      // validates, tags with a sequence number
//	creature, ferr := client.FetchCreature(ctx, req.Token)
//	store.CompleteSearch(req.Seq, creature, ferr)
//
// Overlapping lookups are allowed. CompleteSearch applies a result only when
// its sequence number is higher than every result applied before it; an older
// response arriving late is dropped. Loading is true while the newest issued
// request is unsettled.
//
// # Party
//
// The party holds at most PartyCapacity entries. Capture appends a deep copy
// of the current result, so later lookups never change captured entries.
// Release removes by position and shifts later entries down.
//
// # Notices
//
// Each user-visible outcome appends exactly one Notice to the outbox:
//
//	blank query        warning  "Please enter a Pokemon name or ID"
//	lookup failure     error    "Pokemon not found" / "Please try another name or ID"
//	capture            success  "<name> captured!"
//	capture, full      warning  "Party is full!" / "You can only capture up to 6 Pokemon"
//	release            info     "<name> released"
//
// Notices drains the outbox. Capture without a current result and Release
// with a bad index return coded errors without a notice.
package state
