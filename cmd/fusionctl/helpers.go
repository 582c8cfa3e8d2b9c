package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imadgeboyega/destiny-fusion/internal/compat"
)

// loadFile decodes a YAML or JSON document into dst through the JSON field names,
// so a chart file uses the same keys as the HTTP API
func loadFile(path string, dst interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert %s: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func loadPeople(path1, path2 string) (compat.Person, compat.Person, error) {
	var p1, p2 compat.Person
	if err := loadFile(path1, &p1); err != nil {
		return p1, p2, err
	}
	if err := loadFile(path2, &p2); err != nil {
		return p1, p2, err
	}
	return p1, p2, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
