package biashara

import (
	"encoding/json"
	"fmt"
)

// This file contains the encoding of the state, the exact inverse of Decode.

// Encode serializes the full state as compact JSON.
func Encode(s State) ([]byte, error) {
	data, err := json.Marshal(s.Clone())
	if err != nil {
		return nil, fmt.Errorf("cannot encode state: %w", err)
	}
	return data, nil
}

// EncodeIndent serializes the full state as JSON indented by two spaces.
func EncodeIndent(s State) ([]byte, error) {
	data, err := json.MarshalIndent(s.Clone(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cannot encode state: %w", err)
	}
	return data, nil
}

// MarshalJSON writes a debt with its optional dates omitted when unset.
func (d Debt) MarshalJSON() ([]byte, error) {
	var w recordWriter
	w.field("id", d.ID)
	w.field("creditor", d.Creditor)
	w.field("amount", d.Amount)
	w.field("paidAmount", d.PaidAmount)
	w.text("dueDate", d.DueDate)
	w.field("status", d.Status)
	w.text("date", d.Date)
	return w.object()
}
