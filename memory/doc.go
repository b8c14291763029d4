// Package memory formats stored memory facts for prompt injection.
//
// Memories are category-tagged text facts persisted by the store
// layer. Before every completion call the engine turns the full list
// into a single labeled text block that is appended to the system
// prompt, so the model carries long-term context across conversations.
//
// Formatting is a pure function: no I/O, byte-deterministic for a
// given input list. That property is what the formatter tests rely on.
package memory
