package db

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MatchMode selects where QuoteLike places its wildcards.
type MatchMode int

const (
	MatchAnywhere MatchMode = iota // %pattern%
	MatchPrefix                    // pattern%
	MatchSuffix                    // %pattern
)

const timestampLayout = "2006-01-02 15:04:05"

// QuoteString renders s as a quoted SQL string literal.
func (a *Adapter) QuoteString(s string) string {
	return pq.QuoteLiteral(s)
}

// QuoteBool renders a boolean as the TRUE/FALSE keyword.
func (a *Adapter) QuoteBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// QuoteJSON serializes v as JSON (HTML characters and slashes left as-is)
// and quotes the result. An unserializable value is an invalid argument.
func (a *Adapter) QuoteJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", &InvalidArgumentError{Reason: "value is not JSON-serializable: " + err.Error()}
	}
	return pq.QuoteLiteral(strings.TrimRight(buf.String(), "\n")), nil
}

// QuoteLike escapes the LIKE metacharacters in s and wraps it in wildcards
// per mode. The result is a complete quoted literal.
func (a *Adapter) QuoteLike(s string, mode MatchMode) string {
	pattern := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	switch mode {
	case MatchPrefix:
		pattern += "%"
	case MatchSuffix:
		pattern = "%" + pattern
	default:
		pattern = "%" + pattern + "%"
	}
	return pq.QuoteLiteral(pattern)
}

// QuoteIdentifier escapes a possibly dotted identifier, quoting each
// segment independently. A literal "*" segment passes through bare so that
// table.* keeps its wildcard meaning.
func (a *Adapter) QuoteIdentifier(ident string) string {
	segments := strings.Split(ident, ".")
	for i, segment := range segments {
		if segment == "*" {
			continue
		}
		segments[i] = pq.QuoteIdentifier(segment)
	}
	return strings.Join(segments, ".")
}

// QuoteTime renders a zoned timestamp in the connection timezone. The
// argument is never mutated; time.In yields an independent copy.
func (a *Adapter) QuoteTime(t time.Time) string {
	loc := a.timezone
	if loc == nil {
		loc = time.UTC
	}
	return "'" + t.In(loc).Format(timestampLayout) + "'::timestamptz"
}

// QuoteSimpleTime renders the wall-clock reading of t, ignoring its zone
// entirely.
func (a *Adapter) QuoteSimpleTime(t time.Time) string {
	return "'" + t.Format(timestampLayout) + "'::timestamp"
}

// QuoteInterval renders a structured interval as an ISO-8601 period
// literal.
func (a *Adapter) QuoteInterval(iv Interval) string {
	return "'" + iv.String() + "'::interval"
}

// QuoteBytes renders a binary blob in the backend's hex bytea form.
func (a *Adapter) QuoteBytes(b []byte) string {
	return `'\x` + hex.EncodeToString(b) + `'::bytea`
}

// ConvertValue dispatches a native Go value to the matching literal
// conversion. Values without a scalar mapping are serialized as JSON.
func (a *Adapter) ConvertValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return a.QuoteString(x), nil
	case bool:
		return a.QuoteBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case time.Time:
		return a.QuoteTime(x), nil
	case []byte:
		return a.QuoteBytes(x), nil
	case Interval:
		return a.QuoteInterval(x), nil
	case uuid.UUID:
		return a.QuoteString(x.String()), nil
	default:
		return a.QuoteJSON(v)
	}
}

// Native column type tags with a driver-side inbound conversion.
const (
	TypeBoolean  = "boolean"
	TypeBigInt   = "int8"
	TypeInterval = "interval"
	TypeBit      = "bit"
	TypeVarBit   = "varbit"
	TypeBytea    = "bytea"
)

var booleanTruthy = map[string]bool{
	"true": true, "t": true, "yes": true, "y": true, "on": true, "1": true,
}

// ConvertColumnValue converts a raw column string per its declared native
// type tag. Tags outside the closed set fail loudly instead of passing
// through.
func (a *Adapter) ConvertColumnValue(nativeType, raw string) (any, error) {
	switch nativeType {
	case TypeBoolean, "bool":
		return booleanTruthy[strings.ToLower(strings.TrimSpace(raw))], nil
	case TypeBigInt, "bigint":
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			// Out of range for int64: the text form is lossless, keep it.
			return raw, nil
		}
		return n, nil
	case TypeInterval:
		return ParseInterval(raw)
	case TypeBit, TypeVarBit:
		n, err := strconv.ParseUint(raw, 2, 64)
		if err != nil {
			return nil, &InvalidArgumentError{Reason: "malformed bit string: " + raw}
		}
		return n, nil
	case TypeBytea:
		return unescapeBytea(raw)
	default:
		return nil, &NotSupportedError{Feature: "column type " + nativeType}
	}
}

// unescapeBytea decodes the backend's hex or legacy octal-escape bytea
// output.
func unescapeBytea(s string) ([]byte, error) {
	if strings.HasPrefix(s, `\x`) {
		decoded, err := hex.DecodeString(s[2:])
		if err != nil {
			return nil, &InvalidArgumentError{Reason: "malformed bytea: " + err.Error()}
		}
		return decoded, nil
	}

	var out []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		if i+1 < len(s) && s[i+1] == '\\' {
			out = append(out, '\\')
			i++
			continue
		}
		if i+3 < len(s) {
			n, err := strconv.ParseUint(s[i+1:i+4], 8, 8)
			if err != nil {
				return nil, &InvalidArgumentError{Reason: "malformed bytea escape in " + s}
			}
			out = append(out, byte(n))
			i += 3
			continue
		}
		return nil, &InvalidArgumentError{Reason: "truncated bytea escape in " + s}
	}
	return out, nil
}
