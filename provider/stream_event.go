package provider

import (
	"errors"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	chunkJSON = []byte(`{"type":"chunk"}`)
	doneJSON  = []byte(`{"type":"done"}`)
	errorJSON = []byte(`{"type":"error"}`)
)

// StreamEvent is the sum type delivered on a streaming completion channel.
// Concrete variants are Chunk, Done, and Error.
type StreamEvent interface {
	streamEvent()
}

// Chunk carries one incremental fragment of assistant text, in arrival order.
type Chunk struct {
	Text      string          `json:"text"`
	Timestamp strfmt.DateTime `json:"timestamp,omitempty"`
}

func (Chunk) streamEvent() {}

// Done signals upstream completion. Text is the full concatenation of every
// fragment delivered before it. Emitted exactly once, as the last event of a
// successful stream.
type Done struct {
	Text      string          `json:"text"`
	Timestamp strfmt.DateTime `json:"timestamp,omitempty"`
}

func (Done) streamEvent() {}

// Error is a terminal stream event: partial network failure mid-stream
// propagates here and the channel closes after it.
type Error struct {
	Err       error           `json:"error"`
	Timestamp strfmt.DateTime `json:"timestamp,omitempty"`
}

func (Error) streamEvent() {}

func (e Error) Error() string {
	return fmt.Sprintf("stream error: %v", e.Err)
}

// Unwrap exposes the underlying error to errors.Is/errors.As.
func (e Error) Unwrap() error {
	return e.Err
}

// MarshalJSON implements custom JSON marshaling for Chunk.
func (c Chunk) MarshalJSON() ([]byte, error) {
	result, err := sjson.SetBytes(chunkJSON, "text", c.Text)
	if err != nil {
		return nil, err
	}
	if !c.Timestamp.IsZero() {
		result, err = sjson.SetBytes(result, "timestamp", c.Timestamp.String())
	}
	return result, err
}

// UnmarshalJSON implements custom JSON unmarshaling for Chunk.
func (c *Chunk) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}
	if tpe := gjson.GetBytes(data, "type"); !tpe.Exists() || tpe.String() != "chunk" {
		return fmt.Errorf("missing or invalid type, expected 'chunk'")
	}
	text := gjson.GetBytes(data, "text")
	if !text.Exists() {
		return fmt.Errorf("missing required field 'text'")
	}
	c.Text = text.String()
	if ts := gjson.GetBytes(data, "timestamp"); ts.Exists() {
		if err := c.Timestamp.UnmarshalText([]byte(ts.String())); err != nil {
			return fmt.Errorf("invalid timestamp: %w", err)
		}
	}
	return nil
}

// MarshalJSON implements custom JSON marshaling for Done.
func (d Done) MarshalJSON() ([]byte, error) {
	result, err := sjson.SetBytes(doneJSON, "text", d.Text)
	if err != nil {
		return nil, err
	}
	if !d.Timestamp.IsZero() {
		result, err = sjson.SetBytes(result, "timestamp", d.Timestamp.String())
	}
	return result, err
}

// UnmarshalJSON implements custom JSON unmarshaling for Done.
func (d *Done) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}
	if tpe := gjson.GetBytes(data, "type"); !tpe.Exists() || tpe.String() != "done" {
		return fmt.Errorf("missing or invalid type, expected 'done'")
	}
	text := gjson.GetBytes(data, "text")
	if !text.Exists() {
		return fmt.Errorf("missing required field 'text'")
	}
	d.Text = text.String()
	if ts := gjson.GetBytes(data, "timestamp"); ts.Exists() {
		if err := d.Timestamp.UnmarshalText([]byte(ts.String())); err != nil {
			return fmt.Errorf("invalid timestamp: %w", err)
		}
	}
	return nil
}

// MarshalJSON implements custom JSON marshaling for Error.
func (e Error) MarshalJSON() ([]byte, error) {
	result := errorJSON
	var err error
	if e.Err != nil {
		result, err = sjson.SetBytes(result, "error", e.Err.Error())
		if err != nil {
			return nil, err
		}
	}
	if !e.Timestamp.IsZero() {
		result, err = sjson.SetBytes(result, "timestamp", e.Timestamp.String())
	}
	return result, err
}

// UnmarshalJSON implements custom JSON unmarshaling for Error.
func (e *Error) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}
	if tpe := gjson.GetBytes(data, "type"); !tpe.Exists() || tpe.String() != "error" {
		return fmt.Errorf("missing or invalid type, expected 'error'")
	}
	errMsg := gjson.GetBytes(data, "error")
	if !errMsg.Exists() {
		return errors.New("missing required field 'error'")
	}
	e.Err = errors.New(errMsg.String())
	if ts := gjson.GetBytes(data, "timestamp"); ts.Exists() {
		if err := e.Timestamp.UnmarshalText([]byte(ts.String())); err != nil {
			return fmt.Errorf("invalid timestamp: %w", err)
		}
	}
	return nil
}
