/*
Package ports defines the driven ports (interfaces) for knobs.

These interfaces decouple the registry from external implementations, allowing
parameter values to be persisted in various storage backends.

# Key Interfaces

  - ValueStore: Saves and loads registry snapshots by key (memory, file, Redis).
*/
package ports
