package llm

import "strings"

// The repair pass fixes the structural defects local models emit most
// often: commentary parentheses dropped inside string values, bare enum
// words after a colon, trailing commas, and unquoted object keys. Each
// repair is a single pure pass over the bytes; the pipeline never loops.

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				inFence = false
				continue
			}
			inFence = true
			continue
		}
		if inFence || !strings.HasPrefix(trimmed, "```") {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// extractObject returns the span from the first '{' to the last '}', or ""
// when no object delimiters are present.
func extractObject(s string) string {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || start >= end {
		return ""
	}
	return s[start : end+1]
}

// stripComments removes C-style line and block comments outside of JSON
// string values. Models sometimes annotate JSON despite instructions not to.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}

		if inString {
			b.WriteByte(c)
			continue
		}

		// Line comment: skip to end of line
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		}

		// Block comment: skip to closing */
		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			i += 2
			for i+1 < len(s) {
				if s[i] == '*' && s[i+1] == '/' {
					i++
					break
				}
				i++
			}
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

// removeStringAsides drops parenthetical asides embedded inside quoted
// string values, e.g. `"Write intro (roughly 5 pages)"`. The aside and one
// preceding space are removed; a closing quote ends the aside early so an
// unbalanced '(' cannot swallow the rest of the document.
func removeStringAsides(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}

		if inString && c == '(' {
			if out := b.String(); len(out) > 0 && out[len(out)-1] == ' ' {
				trimmed := out[:len(out)-1]
				b.Reset()
				b.Grow(len(s))
				b.WriteString(trimmed)
			}
			for i+1 < len(s) && s[i+1] != ')' && s[i+1] != '"' {
				i++
			}
			if i+1 < len(s) && s[i+1] == ')' {
				i++
			}
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

// quoteBareScalars wraps unquoted word values following a colon in quotes,
// e.g. `"priority": high` becomes `"priority": "high"`. Numbers, booleans,
// null, and nested structures are left alone.
func quoteBareScalars(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}

		if inString || c != ':' {
			b.WriteByte(c)
			continue
		}

		b.WriteByte(c)

		j := i + 1
		for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
			j++
		}
		if j >= len(s) {
			continue
		}
		next := s[j]
		if next == '"' || next == '{' || next == '[' || next == '-' || isDigit(next) {
			continue
		}

		// Capture the bare token up to a structural delimiter.
		end := j
		for end < len(s) && !isScalarEnd(s[end]) {
			end++
		}
		token := strings.TrimRight(s[j:end], " \t")
		if token == "" || token == "true" || token == "false" || token == "null" {
			continue
		}

		b.WriteString(s[i+1 : j])
		b.WriteByte('"')
		b.WriteString(token)
		b.WriteByte('"')
		i = j + len(token) - 1
	}

	return b.String()
}

// removeTrailingCommas drops commas that directly precede a closing brace
// or bracket.
func removeTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}

		if !inString && c == ',' {
			j := i + 1
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
		}

		b.WriteByte(c)
	}

	return b.String()
}

// quoteBareKeys wraps unquoted object keys in quotes, e.g. `{name: "x"}`
// becomes `{"name": "x"}`. A bare word counts as a key only when the
// previous structural character opened an object or ended a member and a
// colon follows it.
func quoteBareKeys(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	inString := false
	escaped := false
	prev := byte('{')

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			prev = c
			continue
		}

		if inString {
			b.WriteByte(c)
			continue
		}

		if isKeyStart(c) && (prev == '{' || prev == ',') {
			end := i
			for end < len(s) && isKeyChar(s[end]) {
				end++
			}
			j := end
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j < len(s) && s[j] == ':' {
				b.WriteByte('"')
				b.WriteString(s[i:end])
				b.WriteByte('"')
				i = end - 1
				prev = '"'
				continue
			}
		}

		b.WriteByte(c)
		if !isSpace(c) {
			prev = c
		}
	}

	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isScalarEnd(c byte) bool {
	return c == ',' || c == '}' || c == ']' || c == '\n' || c == '\r'
}

func isKeyStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKeyChar(c byte) bool {
	return isKeyStart(c) || isDigit(c) || c == '-'
}
