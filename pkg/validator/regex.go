package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// compile turns a delimited pattern such as "/^[a-z]+$/i" into a Go regexp.
// Undelimited patterns are compiled as is. Compiled patterns are cached.
func (e *Engine) compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := e.patterns.Get(pattern); ok {
		return re, nil
	}

	expr, err := translatePattern(pattern)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRuleParams, err)
	}

	e.patterns.Put(pattern, re)
	return re, nil
}

func translatePattern(pattern string) (string, error) {
	if len(pattern) < 2 {
		return pattern, nil
	}

	delim := pattern[0]
	if isAlphaNumeric(delim) || delim == '\\' || delim == ' ' {
		return pattern, nil
	}
	closing := delim
	switch delim {
	case '(':
		closing = ')'
	case '{':
		closing = '}'
	case '[':
		closing = ']'
	case '<':
		closing = '>'
	}

	end := strings.LastIndexByte(pattern, closing)
	if end <= 0 {
		return "", fmt.Errorf("%w: missing closing delimiter in %q", ErrInvalidRuleParams, pattern)
	}
	body, modifiers := pattern[1:end], pattern[end+1:]

	var flags strings.Builder
	for _, m := range modifiers {
		switch m {
		case 'i', 'm', 's':
			if !strings.ContainsRune(flags.String(), m) {
				flags.WriteRune(m)
			}
		case 'u', 'x', 'D':
			// Go patterns are UTF-8 aware; the rest have no equivalent.
		default:
			return "", fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidRuleParams, m, pattern)
		}
	}
	if flags.Len() > 0 {
		body = "(?" + flags.String() + ")" + body
	}
	return body, nil
}

func isAlphaNumeric(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
