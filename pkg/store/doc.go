/*
Package store persists the last known state of every task in an embedded
SQLite database at <dataDir>/tasks.db.

The store runs in WAL mode with synchronous=NORMAL: completed writes may be
lost across a crash, in-order visibility within the connection is kept.
Schema setup creates the tasks table on first open and applies the one-shot
error_message column migration for older databases. Transient lock errors
retry up to 3 times with exponential backoff starting at 50 ms.

Progress and finish writes enforce the lifecycle invariants at the SQL
layer: UpdateProgress never lowers the stored percentage, and a terminal row
(SUCCESS, FAILED, CANCELLED) is frozen — later progress updates and repeat
finishes are no-ops, which makes terminal writes idempotent. UpsertStart is
not guarded this way: it resets an existing row, terminal or not, to
RUNNING at 0%.

All writes are expected to arrive through the progress manager's single DB
writer; reads may run concurrently.
*/
package store
