/*
Package procmgr spawns, tracks and signals CPU worker subprocesses
individually.

Unlike an opaque worker pool, every subprocess handle stays addressable by
task id, which is what makes forceful termination of a single stuck task
possible: SIGTERM for a graceful stop with a 5 s SIGKILL escalation, or an
immediate SIGKILL when force is requested.

Concurrency is capped by a counting semaphore sized max(1, physical cores −
2). Submit blocks while the pool is saturated — submissions are never
dropped — and the monitor goroutine releases the slot exactly once per
submit, whichever way the subprocess dies.

Workers are re-execs of this binary running the hidden "worker" subcommand.
The job spec goes to the worker's stdin as one JSON line; lifecycle messages
come back as JSON lines on stdout (see pkg/worker for the message shapes);
a cooperative cancel is the literal stdin line "cancel".
*/
package procmgr
