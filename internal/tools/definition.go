package tools

// ArgType is the JSON Schema type of a tool argument.
type ArgType string

const (
	ArgInteger ArgType = "integer"
	ArgString  ArgType = "string"
	ArgNumber  ArgType = "number"
)

// Argument describes one named argument a tool accepts. Arguments not
// listed here are silently dropped from the outgoing query.
type Argument struct {
	Name        string
	Type        ArgType
	Description string
	Required    bool

	// Summary, when non-empty, is a one-verb format template (with a
	// single %s) contributing this argument to the report header's
	// filter clause, e.g. "session %s" or "driver #%s".
	Summary string

	// UpperBound encodes the value as "<=value", asking the API for
	// records at or below the threshold. Only pit_duration uses this.
	UpperBound bool
}

// Field describes one output line of a rendered record: the label
// shown to the user and the record key it reads. A field whose value
// is missing or null is not rendered; zero and false are rendered.
type Field struct {
	Label string
	Key   string
}

// Definition is one tool in the catalog: its schema, the API endpoint
// it queries, and the ordered fields its report shows. Definitions are
// built once at startup and never mutated.
type Definition struct {
	Name        string
	Description string
	Endpoint    string
	// Noun names one result in report text ("session", "pit stop").
	Noun      string
	Arguments []Argument
	Fields    []Field
}

// InputSchema returns the tool's argument schema as JSON Schema, the
// shape MCP hosts expect in tools/list.
func (d Definition) InputSchema() map[string]any {
	properties := make(map[string]any, len(d.Arguments))
	var required []string
	for _, arg := range d.Arguments {
		properties[arg.Name] = map[string]any{
			"type":        string(arg.Type),
			"description": arg.Description,
		}
		if arg.Required {
			required = append(required, arg.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
