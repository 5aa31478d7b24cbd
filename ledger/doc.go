// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger is the durable ballot ledger and the tally view over it.

# Casting

Cast gates on the voting window (session_closed outside it), optionally
validates the candidate against the position's slate, and inserts the
ballot. Uniqueness is the database's job: UNIQUE(voter_id, position)
makes the insert the atomicity boundary, so two concurrent casts for the
same pair resolve to exactly one ack and one duplicate_vote no matter
how they interleave.

A voter's ballot for a position lasts for the lifetime of the election -
re-opening a window does not reset eligibility. The only way back is the
administrative Remove.

# Tally

Tally groups and counts all ballots:

	tally, err := l.Tally() // map[position]map[candidate]count

O(ballots) per call; elections are bounded in size, so the full rescan
is cheaper than keeping incremental counters consistent.

# Notifications

Every successful Cast and Remove broadcasts a tally-changed event with
the fresh counts. The broadcast is best-effort; the mutation stands even
if the recompute for the push fails.
*/
package ledger
