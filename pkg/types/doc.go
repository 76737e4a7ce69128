/*
Package types defines the core data structures shared across the algorithm
service.

It contains the task lifecycle enums and records used by the dispatcher, the
progress manager, the task store and the gRPC surface. Status transition rules
live here so every component polices the same table: terminal states
(SUCCESS, FAILED, CANCELLED) are frozen, and CANCEL_REQUESTED only resolves to
a terminal state.

All types are plain values, JSON-serializable, and safe to read concurrently;
mutation is synchronized by their owning component.
*/
package types
