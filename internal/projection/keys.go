package projection

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// camelKey converts a snake_case output key to the client's camelCase. The
// first part is kept as is; every later part is title cased, so "gene_ID"
// becomes "geneId".
func camelKey(key string) string {
	if !strings.ContainsAny(key, "_- ") {
		return key
	}
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	if len(parts) == 0 {
		return key
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		b.WriteString(inflect.Capitalize(strings.ToLower(part)))
	}
	return b.String()
}

// TransformKeys camel-cases every key of flat. The entity's own guid is not
// copied into the result; it is returned separately so the projector can
// emit it as <kind>Guid. found is false when flat carries no guid entry.
func TransformKeys(flat Flat) (result *Result, guid any, found bool) {
	result = NewResult()
	for _, e := range flat {
		if e.Key == identifierKey {
			guid, found = e.Value, true
			continue
		}
		result.Set(camelKey(e.Key), e.Value)
	}
	return result, guid, found
}
