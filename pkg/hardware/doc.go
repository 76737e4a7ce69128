/*
Package hardware probes the machine once at startup and exposes the two
task executors.

The GPU probe goes through NVML; any failure (no driver, no device) leaves
the service in CPU-only mode. The CPU executor is the process manager; the
GPU executor is a 2-worker in-process thread pool, or an alias of the CPU
executor when no GPU is present. ExecutorFor maps an algorithm's resource
preference onto one of the two.

GPU jobs get a Future supporting pre-start cancellation only: a running
goroutine cannot be killed, cooperative cancellation takes over once a job
has started.
*/
package hardware
