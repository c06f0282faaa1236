package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level. Zero selects the
// default of 2; negative disables indentation entirely, producing compact
// single line output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// SortKeys emits object keys in sorted rather than insertion order. Meant
// for canonical comparison output, never for persisted revisions.
func SortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
