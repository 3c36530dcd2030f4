// File: names.go
// Role: vertex naming schemes for the symbolic formats (ncol, lgl, GraphML,
// GraphViz, Pajek).

package graphio

import (
	"fmt"
	"strconv"
)

// NameFn renders vertex id idx as a name. It must be deterministic and
// injective over the ids it is used for.
type NameFn func(idx int) string

// DecimalNames renders idx in base 10: 0→"0", 42→"42".
func DecimalNames(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNames renders idx in [0,25] as an upper-case letter: 0→"A", 25→"Z".
// Panics outside that range.
func SymbolNames(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolNames: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelNames renders idx as a spreadsheet column: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelNames(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelNames: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// AlphanumericNames renders idx in base 36: 10→"a", 36→"10". Panics if idx < 0.
func AlphanumericNames(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericNames: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 36)
}

// HexNames renders idx in lower-case hexadecimal: 255→"ff". Panics if idx < 0.
func HexNames(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexNames: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// PrefixedNames renders prefix followed by the decimal id: "v0", "v1", ...
func PrefixedNames(prefix string) NameFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ParseNames resolves a scheme name used on the command line: "decimal",
// "symbol", "excel", "alphanumeric", "hex", or "prefix:<p>".
func ParseNames(s string) (NameFn, error) {
	switch s {
	case "", "decimal":
		return DecimalNames, nil
	case "symbol":
		return SymbolNames, nil
	case "excel":
		return ExcelNames, nil
	case "alphanumeric":
		return AlphanumericNames, nil
	case "hex":
		return HexNames, nil
	}
	if len(s) > len("prefix:") && s[:len("prefix:")] == "prefix:" {
		return PrefixedNames(s[len("prefix:"):]), nil
	}
	return nil, fmt.Errorf("ParseNames(%q): unknown scheme", s)
}
