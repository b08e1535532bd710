package bucket

import (
	"strconv"

	"github.com/ratewall/ratewall/utils/builderpool"
)

// State wire codec: compact ASCII "v1|tokens|lastrefill_millis". The
// version prefix lets a future format coexist with records already in
// storage.

// checkV1Header validates that the string starts with "v1|".
func checkV1Header(s string) bool {
	return len(s) >= 3 && s[0] == 'v' && s[1] == '1' && s[2] == '|'
}

// EncodeState serializes a State into the compact format.
func EncodeState(s State) string {
	sb := builderpool.Get()
	defer builderpool.Put(sb)

	// rough capacity: header + float + separator + millis
	sb.Grow(3 + 24 + 1 + 14)
	sb.WriteString("v1|")
	sb.WriteString(strconv.FormatFloat(s.Tokens, 'g', -1, 64))
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatInt(s.LastRefill, 10))
	return sb.String()
}

// parseStateFields parses the two fields after the version header.
func parseStateFields(data string) (float64, int64, bool) {
	pos := 0
	for pos < len(data) && data[pos] != '|' {
		pos++
	}
	if pos == len(data) {
		return 0, 0, false
	}

	tokens, err := strconv.ParseFloat(data[:pos], 64)
	if err != nil {
		return 0, 0, false
	}

	last, err := strconv.ParseInt(data[pos+1:], 10, 64)
	if err != nil {
		return 0, 0, false
	}

	return tokens, last, true
}

// DecodeState deserializes the compact format; ok=false means the value
// is malformed or carries an unknown version.
func DecodeState(s string) (State, bool) {
	if !checkV1Header(s) {
		return State{}, false
	}

	tokens, last, ok := parseStateFields(s[3:])
	if !ok {
		return State{}, false
	}

	return State{Tokens: tokens, LastRefill: last}, true
}
