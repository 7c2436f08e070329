// SPDX-License-Identifier: MIT
// Package: pathfinding/builder
//
// id_fn.go - vertex ID schemes and their scenario names.
//
// A scheme maps a zero-based vertex index to a string. It is used for
// vertex IDs (WithIDScheme) and, optionally, labels (WithLabelFn).
// Every scheme is injective on idx ≥ 0, so generated IDs never collide.

package builder

import (
	"fmt"
	"strconv"
)

// Scheme names accepted by NamedIDs. These are the values of the
// scenario "ids" key.
const (
	IDsDecimal  = "decimal"
	IDsExcel    = "excel"
	IDsPrefixed = "prefixed"
)

// IDFn generates a vertex identifier from its zero-based index.
// Implementations are pure; they may panic on idx < 0.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal form of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet column name of idx:
// 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: ExcelColumnIDFn(%d)", idx))
	}
	// Bijective base 26, filled from the right. 14 letters cover any int64.
	var buf [16]byte
	i := len(buf)
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}

	return string(buf[i:])
}

// SymbolNumberIDFn returns a scheme producing prefix + decimal index,
// e.g. "v0", "v1". Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: SymbolNumberIDFn(%q)(%d)", prefix, idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// NamedIDs resolves a scheme name to its IDFn. The empty name is
// IDsDecimal; prefix is read by IDsPrefixed only.
// Unknown names fail with ErrUnknownIDScheme.
func NamedIDs(name, prefix string) (IDFn, error) {
	switch name {
	case "", IDsDecimal:
		return DefaultIDFn, nil
	case IDsExcel:
		return ExcelColumnIDFn, nil
	case IDsPrefixed:
		return SymbolNumberIDFn(prefix), nil
	default:
		return nil, fmt.Errorf("NamedIDs: %q: %w", name, ErrUnknownIDScheme)
	}
}
