/*
Package dispatcher is the entry point for every task submission and the
owner of the cancellation state machine.

Submission picks the executor by the algorithm's resource type: CPU tasks go
to the process manager as worker subprocesses, GPU tasks run on the
in-process thread pool with a future handle kept for pre-start cancellation.
Either way the task's lifecycle — progress events, status transitions,
durable writes, result delivery — flows through the same plumbing.

Cancellation resolves in this order: already terminal (rejected), a GPU
future that has not started (cancelled immediately), a live CPU subprocess
(killed, or terminated with a kill-watcher escalation), and finally the
cooperative flag observed by the runner at its next progress report.
*/
package dispatcher
