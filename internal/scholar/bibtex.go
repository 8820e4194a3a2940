package scholar

import (
	"fmt"
	"sort"
	"strings"
)

// standardFieldOrder lists the fields written first, in this order. Any
// remaining fields follow alphabetically so output is deterministic.
var standardFieldOrder = []string{
	"title",
	"author",
	"journal",
	"booktitle",
	"conference",
	"publisher",
	"year",
	"month",
	"volume",
	"number",
	"pages",
	"doi",
	"url",
	"html",
	"abstract",
	"abbr",
}

// escapedFields are free-text fields whose values get LaTeX escaping.
// Identifiers, URLs, and flag fields pass through verbatim.
var escapedFields = map[string]bool{
	"title":      true,
	"author":     true,
	"journal":    true,
	"booktitle":  true,
	"conference": true,
	"publisher":  true,
	"abstract":   true,
}

// SerializeBibTeX converts an enriched publication into one BibTeX entry.
// The ENTRYTYPE and ID fields are required; they become the entry type and
// citation key rather than body fields.
func SerializeBibTeX(pub *Publication) (string, error) {
	entryType := pub.Field("ENTRYTYPE")
	if entryType == "" {
		return "", fmt.Errorf("publication %q has no entry type", pub.Title())
	}
	key := pub.Field("ID")
	if key == "" {
		return "", fmt.Errorf("publication %q has no citation key", pub.Title())
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, key))

	written := map[string]bool{"ENTRYTYPE": true, "ID": true}

	for _, name := range standardFieldOrder {
		if value, ok := pub.Fields[name]; ok && value != "" {
			writeField(&b, name, value)
		}
		written[name] = true
	}

	var rest []string
	for name, value := range pub.Fields {
		if !written[name] && value != "" {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		writeField(&b, name, pub.Fields[name])
	}

	b.WriteString("}\n")
	return b.String(), nil
}

func writeField(b *strings.Builder, name, value string) {
	if escapedFields[name] {
		value = escapeLatex(value)
	}
	b.WriteString(fmt.Sprintf("  %s = {%s},\n", name, value))
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// Order matters: & must be first (before other escapes that might produce &)
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
