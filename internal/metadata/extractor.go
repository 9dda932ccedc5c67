package metadata

import (
	"regexp"
	"sync"
)

var patternCache sync.Map // pattern string -> *regexp.Regexp

// FindProperty returns the value of the first name=value pair in text.
//
// With quoted set, the value is the text between a pair of single or double
// quotes (name="value"); otherwise it is the run of non-space characters
// after the equals sign (name=value). Matching is case-sensitive. Only the
// value is returned, without the name, the equals sign or the quotes.
func FindProperty(text, name string, quoted bool) (string, bool) {
	m := propertyPattern(name, quoted).FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func propertyPattern(name string, quoted bool) *regexp.Regexp {
	expr := regexp.QuoteMeta(name) + `=(\S+)`
	if quoted {
		expr = regexp.QuoteMeta(name) + `=["'](.*?)["']`
	}
	if re, ok := patternCache.Load(expr); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(expr)
	patternCache.Store(expr, re)
	return re
}
