// Package harness runs scenario files against the undo engine wrapped
// around the planner host.
//
// A scenario is a YAML file: a sequence of dispatched actions, each with
// optional expectations about the history and the visible state after
// the dispatch. Running a scenario produces a Result with a transcript,
// one trace event per dispatch, serialized in canonical JSON so golden
// files compare byte for byte.
//
// Determinism comes from three substitutions: a fixed session token
// generator instead of UUIDv7, a step clock instead of wall time, and
// the planner's deterministic reducer. The same scenario therefore
// produces the same transcript on every run, which is also what the
// replay CLI command verifies.
package harness
