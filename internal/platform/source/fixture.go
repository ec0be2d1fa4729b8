package source

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"empdir/internal/domain/directory"
)

//go:embed fixture/employees.json
var fixtureJSON []byte

// Fixture serves a fixed record set held in memory.
type Fixture struct {
	records []directory.RawRecord
}

// NewFixture returns the built-in employee table.
func NewFixture() (*Fixture, error) {
	return DecodeFixture(fixtureJSON)
}

func DecodeFixture(data []byte) (*Fixture, error) {
	var payload Payload
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &Fixture{records: payload.TableData.Data}, nil
}

func NewStatic(records []directory.RawRecord) *Fixture {
	return &Fixture{records: records}
}

// FetchRecords returns a copy so callers cannot disturb later fetches.
func (f *Fixture) FetchRecords(ctx context.Context) ([]directory.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]directory.RawRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}
