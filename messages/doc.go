// Package messages defines the canonical payload types exchanged between
// the gateway and its backend callers.
//
// Every backend, regardless of its own wire format, maps its reply into a
// Completion: either assistant text or a batch of tool calls. Downstream
// consumers only ever see these shapes; provider SDK types never cross a
// package boundary.
package messages
