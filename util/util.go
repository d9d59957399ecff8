package util

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// GetSortedKeys is GetKeys with a stable order, for anything that gets printed.
func GetSortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Clamp[A constraints.Integer](num, lo, hi A) A {
	if num < lo {
		return lo
	}
	if num > hi {
		return hi
	}
	return num
}

// WriteFile creates any missing parent directories before writing.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create %v: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write failed for %v: %w", path, err)
	}
	return nil
}
