package asm

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ListingEntry is one line of the assembly listing.
type ListingEntry struct {
	LineNo   int    // Source line number.
	Location int    // Address, register or data location. -1 if none.
	Payload  string // Hex rendering of the emitted word or value.
	Text     string // Source text, or MACRO_MARKER.
}

// String formats the entry with the location left justified in 8
// columns and the payload in 12, padded with '.' on odd source lines
// and ' ' on even source lines.
func (le ListingEntry) String() string {
	fill := "."
	if le.LineNo%2 == 0 {
		fill = " "
	}

	var loc string
	if le.Location >= 0 {
		loc = fmt.Sprintf("%02x%02x", (le.Location>>8)&0xff, le.Location&0xff)
	}

	pad := func(s string, width int) string {
		if len(s) >= width {
			return s
		}
		return s + strings.Repeat(fill, width-len(s))
	}

	return pad(loc, 8) + pad(le.Payload, 12) + " " + le.Text
}

// Listing collects entries at the position of their source line.
// Inserted entries push the following source lines down.
type Listing struct {
	Entries []ListingEntry
	offset  int
}

func (l *Listing) reset(lines int) {
	l.Entries = make([]ListingEntry, lines)
	l.offset = 0
}

func (l *Listing) index(lineNo int) (n int) {
	n = lineNo - 1 + l.offset
	if n >= len(l.Entries) {
		l.Entries = append(l.Entries, make([]ListingEntry, n+1-len(l.Entries))...)
	}
	return
}

// Log sets the entry for a source line.
func (l *Listing) Log(lineNo int, location int, payload string, text string) {
	l.Entries[l.index(lineNo)] = ListingEntry{
		LineNo:   lineNo,
		Location: location,
		Payload:  payload,
		Text:     text,
	}
}

// Insert adds an entry ahead of the current position of a source line.
func (l *Listing) Insert(lineNo int, location int, payload string, text string) {
	n := l.index(lineNo)
	l.Entries = slices.Insert(l.Entries, n, ListingEntry{
		LineNo:   lineNo,
		Location: location,
		Payload:  payload,
		Text:     text,
	})
	l.offset++
}

// Lines iterates over the formatted listing, skipping unset entries.
func (l *Listing) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, entry := range l.Entries {
			if entry.LineNo == 0 {
				continue
			}
			if !yield(entry.String()) {
				return
			}
		}
	}
}
