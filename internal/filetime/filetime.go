// Package filetime converts between time.Time and the two timestamp
// encodings used by containers: the 64-bit Win32 FILETIME in the header and
// the 32-bit MS-DOS date/time word in each entry.
//
// The zero time.Time maps to a raw zero in both encodings and back.
package filetime

import "time"

// epochDelta is the number of 100ns ticks between 1601-01-01 and 1970-01-01.
const epochDelta = 116444736000000000

// ToFiletime encodes t as 100ns ticks since 1601-01-01 UTC.
func ToFiletime(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	return uint64(t.UnixNano()/100 + epochDelta) //nolint:gosec // times before 1601 are not representable
}

// FromFiletime decodes a FILETIME into UTC.
func FromFiletime(v uint64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	ticks := int64(v) - epochDelta //nolint:gosec // FILETIME fits int64 until year 30828
	return time.Unix(ticks/1e7, (ticks%1e7)*100).UTC()
}

// ToDOS encodes t as an MS-DOS date/time word with two-second resolution.
// Times outside 1980..2107 clamp to the nearest representable year.
func ToDOS(t time.Time) uint32 {
	if t.IsZero() {
		return 0
	}
	year := min(max(t.Year(), 1980), 2107) - 1980
	return uint32(year)<<25 | //nolint:gosec // clamped above
		uint32(t.Month())<<21 |
		uint32(t.Day())<<16 | //nolint:gosec // 1..31
		uint32(t.Hour())<<11 | //nolint:gosec // 0..23
		uint32(t.Minute())<<5 | //nolint:gosec // 0..59
		uint32(t.Second()/2) //nolint:gosec // 0..29
}

// FromDOS decodes an MS-DOS date/time word. The result carries no zone and
// is reported in UTC.
func FromDOS(v uint32) time.Time {
	if v == 0 {
		return time.Time{}
	}
	return time.Date(
		int(v>>25&0x7f)+1980,
		time.Month(v>>21&0x0f),
		int(v>>16&0x1f),
		int(v>>11&0x1f),
		int(v>>5&0x3f),
		int(v&0x1f)*2,
		0, time.UTC,
	)
}
