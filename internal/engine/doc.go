// Package engine implements the rewind undo/redo engine.
//
// The engine wraps a host-supplied pure reducer and maintains an action
// log beside the host's state: every dispatched action is classified,
// folded into undo frames, and kept replayable, while undo and redo are
// answered by replaying the base snapshot through the surviving frames.
//
// ARCHITECTURE:
//
// Fully synchronous, single state transition per dispatch:
//  1. Lazily create the history log on the first dispatch of a session
//  2. Classify the action (router-internal kinds skip the catalog)
//  3. Ignored kinds apply and merge into the open frame or pre-history tail
//  4. Undoable kinds open a new frame, resolving the activation policy
//  5. Control kinds (undo/redo) shift frames and replay
//  6. Returning to the home page resets history to a fresh log
//
// Everything is expressed as pure functions over immutable values: the
// log and both frame stacks are replaced wholesale on each transition and
// never mutated in place, so the engine has no shared mutable state even
// if its host later moves dispatching onto another goroutine.
//
// DETERMINISM:
//
// Replay is a strict left fold of the host reducer over a recorded action
// sequence. No wall clocks, no randomness, no early exit. The same log
// replayed twice produces the same state, which the harness exploits for
// byte-identical golden transcripts.
package engine
