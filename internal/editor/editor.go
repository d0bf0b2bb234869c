// Package editor implements the authoring state machines for the three
// question types and the form aggregate that composes them. Every editor
// mutates a private copy of its content and exposes the committed state
// through a pure Snapshot accessor; nothing propagates implicitly.
package editor

import "github.com/google/uuid"

// newID generates identities for questions and their sub-entities. IDs are
// opaque and carry no ordering; position in the owning slice is the only
// ordering that matters.
var newID = uuid.NewString
