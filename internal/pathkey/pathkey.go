// Package pathkey turns quoted TDMS object paths into flat keys.
//
// An object path such as /'Measured Data'/'Ch 1' becomes Measured_Data-Ch_1:
// each quoted name is kept with runs of non-alphanumeric characters collapsed to
// a single '_', and path levels are joined with '-'. Because '-' never survives
// inside a name, the number of '-' in a key gives the object level.
package pathkey

import (
	"strings"
)

// Kind is the level of an object in the root/group/channel hierarchy.
type Kind uint8

const (
	KindRoot Kind = iota
	KindGroup
	KindChannel
	KindInvalid // more than two levels below the root
)

const (
	separator = '-'
	escape    = '_'
	quote     = '\''
	slash     = '/'
	trimSet   = "-_"
)

// Key is a classified object path.
type Key struct {
	Raw     string // path as stored in the file
	Clean   string // normalized key
	Kind    Kind
	Group   string // group name for groups and channels
	Channel string // channel name for channels
}

// Parse normalizes raw and classifies the result.
func Parse(raw string) Key {
	clean := Normalize(raw)
	key := Key{Raw: raw, Clean: clean}

	switch strings.Count(clean, string(separator)) {
	case 0:
		if clean == "" {
			key.Kind = KindRoot
		} else {
			key.Kind = KindGroup
			key.Group = clean
		}
	case 1:
		key.Kind = KindChannel
		key.Group, key.Channel, _ = strings.Cut(clean, string(separator))
	default:
		key.Kind = KindInvalid
	}

	return key
}

// Normalize converts a raw object path into its flat key.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	inside := false
	coalesced := false

	for _, c := range raw {
		switch {
		case c == quote:
			inside = !inside
		case c == slash && inside:
			b.WriteByte(escape)
			coalesced = false
		case c == slash:
			flushed := strings.Trim(b.String(), trimSet)
			b.Reset()
			b.WriteString(flushed)
			b.WriteByte(separator)
			coalesced = true
		case isAlphanumeric(c):
			b.WriteRune(c)
			coalesced = false
		case !coalesced:
			b.WriteByte(escape)
			coalesced = true
		}
	}

	return strings.Trim(b.String(), trimSet)
}

func isAlphanumeric(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindGroup:
		return "group"
	case KindChannel:
		return "channel"
	default:
		return "invalid"
	}
}
