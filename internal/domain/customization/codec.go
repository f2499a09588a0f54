package customization

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Encode serialises a record into its transport string. Map keys are written
// in sorted order so equal records always encode to identical bytes.
func Encode(rec Record) (string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return "", newEncodingError("encode customization record", err)
	}
	return string(data), nil
}

// Decode parses a transport string produced by Encode. A blank payload is
// treated as an empty record.
func Decode(payload string) (Record, error) {
	if strings.TrimSpace(payload) == "" {
		return Record{}, nil
	}
	var rec Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return Record{}, newEncodingError("decode customization record", err)
	}
	return rec, nil
}

// ParseValue reads raw as a single JSON literal so numbers, booleans and
// objects keep their type. Numbers are returned as json.Number. Anything
// that is not valid JSON is returned as the plain string.
func ParseValue(raw string) any {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return raw
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return raw
	}
	return value
}
