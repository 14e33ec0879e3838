package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// frameworkRecord is the persisted per-framework document. The name lives in
// the surrounding object key.
type frameworkRecord struct {
	Status Status `json:"status"`
	Path   string `json:"path"`
}

// MarshalJSON renders the manifest as {"frameworks": {...}} with object keys
// in first-tracked order. encoding/json would sort map keys, which loses the
// discovery ordering selection depends on, so the object is assembled by hand.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"frameworks":{`)
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("encode framework name %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		fw := m.byName[name]
		record, err := json.Marshal(frameworkRecord{Status: fw.Status, Path: fw.Path})
		if err != nil {
			return nil, fmt.Errorf("encode framework %q: %w", name, err)
		}
		buf.Write(record)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the persisted document, preserving object key order
// via the token stream. Unknown statuses and duplicate names are rejected so
// a damaged file surfaces as unreadable instead of silently degrading.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	m.names = nil
	m.byName = make(map[string]*Framework)

	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("manifest document: %w", err)
	}

	var sawFrameworks bool
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("manifest document: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("manifest document: unexpected token %v", keyTok)
		}

		if key != "frameworks" {
			var skipped json.RawMessage
			if err := dec.Decode(&skipped); err != nil {
				return fmt.Errorf("manifest section %q: %w", key, err)
			}
			continue
		}

		sawFrameworks = true
		if err := m.decodeFrameworks(dec); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("manifest document: %w", err)
	}
	if !sawFrameworks {
		return fmt.Errorf("manifest document: missing frameworks object")
	}
	return nil
}

func (m *Manifest) decodeFrameworks(dec *json.Decoder) error {
	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("frameworks object: %w", err)
	}

	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("frameworks object: %w", err)
		}
		name, ok := nameTok.(string)
		if !ok {
			return fmt.Errorf("frameworks object: unexpected token %v", nameTok)
		}

		var record frameworkRecord
		if err := dec.Decode(&record); err != nil {
			return fmt.Errorf("framework %q: %w", name, err)
		}
		status, known := ParseStatus(string(record.Status))
		if !known {
			return fmt.Errorf("framework %q: %w %q", name, ErrUnknownStatus, string(record.Status))
		}
		if err := m.Track(Framework{Name: name, Status: status, Path: record.Path}); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("frameworks object: %w", err)
	}
	return nil
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || rune(delim) != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
