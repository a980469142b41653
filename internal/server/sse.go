package server

import (
	"bytes"
	"fmt"
	"io"
)

// Event is one server-sent event. Multi-line data is split across data:
// lines per the SSE wire format.
type Event struct {
	ID    int
	Event []byte
	Data  []byte
	Retry []byte
}

func (e Event) MarshalTo(w io.Writer) error {
	if len(e.Data) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "id: %d\n", e.ID); err != nil {
		return err
	}
	if len(e.Event) > 0 {
		if _, err := fmt.Fprintf(w, "event: %s\n", e.Event); err != nil {
			return err
		}
	}
	for _, line := range bytes.Split(e.Data, []byte("\n")) {
		if _, err := fmt.Fprintf(w, "data: %s\n", line); err != nil {
			return err
		}
	}
	if len(e.Retry) > 0 {
		if _, err := fmt.Fprintf(w, "retry: %s\n", e.Retry); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\n")
	return err
}
