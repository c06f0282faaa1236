package parse

import "github.com/jsonplan/go-jsonplan/format"

type parseOpts struct {
	format format.Format
}

func newParseOpts() *parseOpts {
	return &parseOpts{format: format.JSONFormat}
}

// ParseOption configures Parse.
type ParseOption func(*parseOpts)

// ParseFormat sets the input format, overriding the JSON default.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
	}
}

// ParseJSON sets the input format to JSON.
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}

// ParseYAML sets the input format to YAML.
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
