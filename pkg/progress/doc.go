/*
Package progress owns the in-flight view of every task: the status map, the
per-task progress channels, and the durable-write queue.

# Architecture

Three structures, one owner:

  - Status map: task_id → last known status. Multi-writer in spirit (the
    dispatcher, the cancel path, and worker subprocesses all update it), but
    every write physically happens in the parent process — subprocess updates
    arrive through the dispatcher's IPC pump. The map is the source of truth
    for cancellation state.
  - Progress channels: one bounded FIFO per task. Producers publish, a single
    watcher consumes. The channel is the source of truth for visible
    progress; a watcher attaching after the fact receives one synthetic event
    carrying the last known state.
  - DB queue: every store write is an event on this queue, drained by one
    background writer goroutine. The embedded store is therefore touched by
    exactly one writer. Each event gets up to 3 attempts with exponential
    backoff between them, then is dropped with the failure counted.

# Transition rules

Status updates obey the table in pkg/types: terminal states are frozen, the
percentage never decreases, and CANCEL_REQUESTED survives progress updates
until the runner resolves it to a terminal state.
*/
package progress
