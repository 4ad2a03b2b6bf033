// Package bitfield renders bitmasks against a table of bit labels.
package bitfield

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// Render describes value as the list of labelled bits it has set, in
// ascending bit order:
//
//	[timetick] | [rpm grouped interrupt] ...and unknown interrupt 0x00000004
//
// Bits of value that have no label are collected into a single trailing
// clause named after name, pluralised unless exactly one such bit is set.
// Labels for bits above 63 are ignored.
func Render(name string, labels map[uint]string, value uint64) string {
	var known uint64
	indexes := make([]uint, 0, len(labels))
	for bit := range labels {
		if bit > 63 {
			continue
		}
		known |= 1 << bit
		indexes = append(indexes, bit)
	}
	sort.Slice(indexes, func(i, j int) bool { return indexes[i] < indexes[j] })

	parts := make([]string, 0, len(indexes))
	for _, bit := range indexes {
		if value&(1<<bit) != 0 {
			parts = append(parts, "["+labels[bit]+"]")
		}
	}
	s := strings.Join(parts, " | ")

	unknown := value &^ known
	if unknown == 0 {
		return s
	}
	if s != "" {
		s += " ...and "
	}
	plural := "s"
	if bits.OnesCount64(unknown) == 1 {
		plural = ""
	}
	return s + fmt.Sprintf("unknown %s%s 0x%08x", name, plural, unknown)
}
