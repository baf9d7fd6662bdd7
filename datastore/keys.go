/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/suparena/typebridge/document"
	"github.com/suparena/typebridge/errors"
)

// Key attribute names of the single-table layout.
const (
	PartitionKey = "PK"
	SortKey      = "SK"
)

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// ExpandMacros fills every "{field}" macro of the index map templates with
// the matching top-level field of obj. Missing fields and non-scalar values
// expand to the empty string.
func ExpandMacros(indexMap map[string]string, obj document.Object) map[string]string {
	res := make(map[string]string, len(indexMap))
	for attr, template := range indexMap {
		res[attr] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			return scalarString(obj[strings.Trim(macro, "{}")])
		})
	}
	return res
}

// ExpandKey replaces every macro of the index map templates with key.
func ExpandKey(indexMap map[string]string, key string) map[string]string {
	res := make(map[string]string, len(indexMap))
	for attr, template := range indexMap {
		res[attr] = macroPattern.ReplaceAllLiteralString(template, key)
	}
	return res
}

// PrimaryKey extracts the partition and sort keys from an expanded index map.
func PrimaryKey(expanded map[string]string) (pk, sk string, err error) {
	pk, sk = expanded[PartitionKey], expanded[SortKey]
	if pk == "" {
		return "", "", errors.NewValidationError(PartitionKey, "expanded index map has no partition key")
	}
	if sk == "" {
		return "", "", errors.NewValidationError(SortKey, "expanded index map has no sort key")
	}
	return pk, sk, nil
}

func scalarString(v any) string {
	switch tv := v.(type) {
	case string:
		return tv
	case int64:
		return strconv.FormatInt(tv, 10)
	case float64:
		return strconv.FormatFloat(tv, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(tv)
	default:
		return ""
	}
}
