package utils

import "fmt"

// EnumValidator restricts a string field to a fixed value set. Stored values
// stay plain strings so hand-written code and constants keep working.
func EnumValidator(allowed ...string) func(string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q not in allowed set", s)
	}
}
