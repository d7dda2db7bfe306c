package config

import "strings"

// pick returns the last non-nil layer value, or def when every layer is unset.
func pick[T any](def T, layers ...*T) T {
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i] != nil {
			return *layers[i]
		}
	}
	return def
}

func pickTrimmed(def string, layers ...*string) string {
	return strings.TrimSpace(pick(def, layers...))
}

// pickList is pick for lists. An explicitly empty list clears the default.
func pickList(def []string, layers ...*[]string) []string {
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i] != nil {
			return append([]string{}, *layers[i]...)
		}
	}
	return cloneStrings(def)
}
