// Package session implements the edit loop used by the CLI and HTTP shells.
//
// A Session reads a field through the record Schema, hands its text to the
// caller as an editable buffer, decodes the buffer back against the field's
// declared kind and publishes the result with Registry.Update. Nothing
// reaches the registry before Commit, and Cancel simply drops the buffer.
//
// The id field is displayed like any other leaf but a commit that changes it
// fails with ErrIDImmutable: an edit always belongs to the record it started on.
package session
