package pointer

import (
	"fmt"
	"strings"
)

// Pointer is a parsed pointer: a sequence of decoded reference tokens.
// The empty Pointer denotes the document root.
type Pointer []string

// Parse splits and unescapes a pointer string. The empty string and "/"
// both denote the root; any other string must begin with '/'.
func Parse(ptr string) (Pointer, error) {
	if ptr == "" || ptr == "/" {
		return nil, nil
	}
	if ptr[0] != '/' {
		return nil, fmt.Errorf("%w: must start with '/': %q", ErrMalformed, ptr)
	}
	raw := strings.Split(ptr[1:], "/")
	res := make(Pointer, len(raw))
	for i, t := range raw {
		res[i] = Unescape(t)
	}
	return res, nil
}

// MustParse is Parse for pointers known to be well formed; it panics on
// error.
func MustParse(ptr string) Pointer {
	p, err := Parse(ptr)
	if err != nil {
		panic(err)
	}
	return p
}

// Unescape decodes a single reference token: "~1" becomes "/" and "~0"
// becomes "~". Both substitutions happen in one left-to-right scan so that
// "~01" decodes to "~1" rather than being rewritten twice.
func Unescape(token string) string {
	if !strings.ContainsRune(token, '~') {
		return token
	}
	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c != '~' || i+1 >= len(token) {
			b.WriteByte(c)
			continue
		}
		switch token[i+1] {
		case '0':
			b.WriteByte('~')
			i++
		case '1':
			b.WriteByte('/')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Escape encodes a reference token for embedding in a pointer string.
func Escape(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	var b strings.Builder
	b.Grow(len(token) + 2)
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '~':
			b.WriteString("~0")
		case '/':
			b.WriteString("~1")
		default:
			b.WriteByte(token[i])
		}
	}
	return b.String()
}

// String re-encodes the pointer with tokens escaped. The root pointer
// renders as "".
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range p {
		b.WriteByte('/')
		b.WriteString(Escape(t))
	}
	return b.String()
}

// Parent returns the pointer to the container of p's target, and the final
// token. It must not be called on the root pointer.
func (p Pointer) Parent() (Pointer, string) {
	return p[:len(p)-1], p[len(p)-1]
}

// IsRoot reports whether p denotes the document root.
func (p Pointer) IsRoot() bool { return len(p) == 0 }
