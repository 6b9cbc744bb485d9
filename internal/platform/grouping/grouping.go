// Package grouping buckets flat record lists by a label while keeping the
// order in which labels and records were first seen.
package grouping

import "strings"

// Collection maps a group label to its records. Labels iterate in first-seen
// order, records in input order. Duplicates are retained.
type Collection[T any] struct {
	labels []string
	groups map[string][]T
}

// Group is one bucket of a Collection, used when a slice is easier to encode.
type Group[T any] struct {
	Label string `json:"label"`
	Items []T    `json:"items"`
}

// By groups items by label(item). Items whose label is blank after trimming
// are skipped.
func By[T any](items []T, label func(T) string) Collection[T] {
	out := Collection[T]{groups: make(map[string][]T)}
	for _, item := range items {
		key := strings.TrimSpace(label(item))
		if key == "" {
			continue
		}
		if _, seen := out.groups[key]; !seen {
			out.labels = append(out.labels, key)
		}
		out.groups[key] = append(out.groups[key], item)
	}
	return out
}

func (c Collection[T]) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

func (c Collection[T]) Items(label string) []T {
	return c.groups[label]
}

// Len is the number of groups.
func (c Collection[T]) Len() int {
	return len(c.labels)
}

// Total is the number of records across all groups.
func (c Collection[T]) Total() int {
	total := 0
	for _, items := range c.groups {
		total += len(items)
	}
	return total
}

func (c Collection[T]) Groups() []Group[T] {
	out := make([]Group[T], 0, len(c.labels))
	for _, label := range c.labels {
		out = append(out, Group[T]{Label: label, Items: c.groups[label]})
	}
	return out
}

// Map converts every record while keeping the grouping shape.
func Map[T, U any](c Collection[T], fn func(T) U) Collection[U] {
	out := Collection[U]{
		labels: append([]string(nil), c.labels...),
		groups: make(map[string][]U, len(c.groups)),
	}
	for label, items := range c.groups {
		converted := make([]U, 0, len(items))
		for _, item := range items {
			converted = append(converted, fn(item))
		}
		out.groups[label] = converted
	}
	return out
}
