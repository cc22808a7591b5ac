package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/AryaAkman/Open-F1-MCP-Server/internal/openf1"
)

// recordSeparator closes each rendered record.
var recordSeparator = strings.Repeat("-", 50)

// FormatRecords renders the API's records as a text report: a
// "Found N noun(s)" header with an optional filter clause, then one
// labeled line per present field of each record, in declared order.
// Fields that are missing or null are skipped; zero and false are
// shown. An empty record list yields a fixed no-results sentence.
func FormatRecords(def Definition, args map[string]any, records []openf1.Record) string {
	if len(records) == 0 {
		return fmt.Sprintf("No %ss found matching the criteria.", def.Noun)
	}

	lines := make([]string, 0, len(records)*(len(def.Fields)+2)+2)
	lines = append(lines,
		fmt.Sprintf("Found %d %s(s)%s:", len(records), def.Noun, filterClause(def, args)),
		"")

	for _, record := range records {
		for _, field := range def.Fields {
			value, ok := record[field.Key]
			if !ok || value == nil {
				continue
			}
			if s, isString := value.(string); isString && s == "" {
				continue
			}
			lines = append(lines, field.Label+": "+displayValue(value))
		}
		lines = append(lines, recordSeparator, "")
	}

	// Trailing empty entry so the report ends with a blank line.
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// filterClause summarizes the identity filters applied to the query,
// e.g. " for session 9158, driver #44". Arguments without a Summary
// template contribute nothing. Empty when no summarized argument was
// supplied.
func filterClause(def Definition, args map[string]any) string {
	var parts []string
	for _, arg := range def.Arguments {
		if arg.Summary == "" {
			continue
		}
		value, ok := args[arg.Name]
		if !ok || value == nil {
			continue
		}
		if s, isString := value.(string); isString && s == "" {
			continue
		}
		encoded, ok := encodeScalar(arg.Type, value)
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf(arg.Summary, encoded))
	}
	if len(parts) == 0 {
		return ""
	}
	return " for " + strings.Join(parts, ", ")
}

// displayValue renders one record value. JSON numbers print without a
// spurious decimal point (9158, not 9158.0).
func displayValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
