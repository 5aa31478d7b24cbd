// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session owns the voting-window lifecycle.

# State Machine

Two states, Closed and Open(endTime):

	Closed --Start(d)--> Open(now+d)
	Open   --Stop()----> Closed
	Open   --lazy read-> Closed   (whenever now >= endTime is observed)

Start on an open window fails already_active; Stop on a closed window
fails not_active.

# Lazy Expiry

Status derives openness from the stored end time at read time. If the
durable record still claims active past its end time, the reader
persists the close transition (and notifies observers) before answering.
Correctness never depends on a running timer, so it survives process
restarts.

# Background Ticker

Run polls at a fixed interval so connected observers get a prompt
session-ended event near the deadline. It reuses the same Status path
and mutex; a storage failure is logged and retried next tick, never
silently treated as a closed session.

# Concurrency

A single controller mutex serializes Start, Stop, Status, and the
ticker, keeping the read-modify-write on the session record atomic
within the one authoritative process.
*/
package session
