/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads a YAML text into a Document. Integers become int64.
func ParseYAML(data []byte) (Document, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Document{}, fmt.Errorf("failed to parse YAML document: %w", err)
	}
	return New(v)
}

// YAML renders the document as YAML.
func (d Document) YAML() ([]byte, error) {
	return yaml.Marshal(d.root)
}
