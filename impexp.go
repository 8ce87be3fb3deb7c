package biashara

import (
	"fmt"
	"io"
)

// this file contains functions to handle the backup file format.
// It is the persisted state document itself, pretty printed, so that a backup
// can be read by a human and imported by any version of the application.

// Export writes the full state as JSON indented by two spaces.
func Export(w io.Writer, s State) error {
	data, err := EncodeIndent(s)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write backup: %w", err)
	}
	return nil
}

// Import reads a backup written by Export, or by any older version, through
// the schema migration. Empty input is an error: a backup always holds a document.
func Import(r io.Reader) (State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return State{}, fmt.Errorf("could not read backup: %w", err)
	}
	if len(data) == 0 {
		return State{}, &DecodeError{Err: io.ErrUnexpectedEOF}
	}
	s, err := Decode(NewBlob(data))
	if err != nil {
		return State{}, err
	}
	return s, nil
}
