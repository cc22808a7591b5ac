package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BuildParams maps a tool call's arguments onto the query parameters
// the API understands. Only arguments declared by def are forwarded;
// anything else in args is dropped. Upper-bound arguments are encoded
// as "<=value". The result is built fresh on every call.
func BuildParams(def Definition, args map[string]any) map[string]string {
	params := make(map[string]string, len(args))
	for _, arg := range def.Arguments {
		value, ok := args[arg.Name]
		if !ok || value == nil {
			continue
		}
		encoded, ok := encodeScalar(arg.Type, value)
		if !ok {
			continue
		}
		if arg.UpperBound {
			encoded = "<=" + encoded
		}
		params[arg.Name] = encoded
	}
	return params
}

// encodeScalar renders an argument value for the query string.
// JSON-decoded numbers arrive as float64; the declared type decides
// whether the rendering keeps a decimal point.
func encodeScalar(t ArgType, value any) (string, bool) {
	switch t {
	case ArgInteger:
		switch n := value.(type) {
		case float64:
			return strconv.FormatInt(int64(n), 10), true
		case int:
			return strconv.Itoa(n), true
		case int64:
			return strconv.FormatInt(n, 10), true
		case json.Number:
			return n.String(), true
		case string:
			return n, true
		}
	case ArgNumber:
		switch n := value.(type) {
		case float64:
			return formatDecimal(n), true
		case int:
			return formatDecimal(float64(n)), true
		case int64:
			return formatDecimal(float64(n)), true
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return formatDecimal(f), true
			}
		case string:
			return n, true
		}
	case ArgString:
		if s, ok := value.(string); ok {
			return s, true
		}
		return fmt.Sprintf("%v", value), true
	}
	return "", false
}

// formatDecimal renders a number argument keeping a decimal point, so
// 30 becomes "30.0" — the form the API's relational filters accept.
func formatDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
