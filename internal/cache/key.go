// internal/cache/key.go
package cache

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Key hashes the canonical JSON of parts under a namespace. Map key order and struct
// field order do not affect the result, so equal logical inputs give equal keys.
func Key(namespace string, parts ...interface{}) (string, error) {
	canonical := make([]interface{}, len(parts))
	for i, part := range parts {
		v, err := normalize(part)
		if err != nil {
			return "", fmt.Errorf("cache key part %d: %w", i, err)
		}
		canonical[i] = v
	}
	data, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	sum := blake2b.Sum256(append([]byte(namespace+"\x00"), data...))
	return namespace + ":" + hex.EncodeToString(sum[:]), nil
}

// normalize round-trips v through generic JSON so that encoding/json sorts every object's keys
func normalize(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out interface{}
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
