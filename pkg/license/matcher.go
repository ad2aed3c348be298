package license

import (
	"regexp"
	"strings"
)

// licenseText is the header every checked source file must begin with,
// modulo per-line comment markers. The first line is the copyright line;
// building the rule replaces it with a capturing pattern for the year and
// owner name.
const licenseText = `
Copyright YYYY Owner Name

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
`

const copyrightPattern = `Copyright (\d{4} .*)`

// looseMeta relaxes QuoteMeta's escaping: periods match any character, and
// parentheses become character classes so they match literally instead of
// grouping.
var looseMeta = strings.NewReplacer(`\.`, `.`, `\(`, `[(]`, `\)`, `[)]`)

// Matcher tests file contents against the license header rule. Build it
// once with NewMatcher and reuse it for every file.
type Matcher struct {
	re *regexp.Regexp
}

func NewMatcher() *Matcher {
	return &Matcher{re: buildRule(licenseText)}
}

// buildRule compiles the header rule: an optional leading "/*" line, each
// template line prefixed by any run of '#' or space characters, an optional
// trailing "*/" line, and a blank line ending the block. The rule only
// matches at the very start of the input.
func buildRule(template string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`(?m)\A(?:^/\*\n)?`)
	for _, line := range strings.Split(strings.TrimSpace(template), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Copyright ") {
			line = copyrightPattern
		} else {
			line = looseMeta.Replace(regexp.QuoteMeta(line))
		}
		b.WriteString(`^[# ]*`)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(`(?:^\*/\n)?^$`)
	return regexp.MustCompile(b.String())
}

// Match reports whether contents begin with the license header. On a match
// it also returns the captured copyright text (year and owner name).
func (m *Matcher) Match(contents []byte) ([]byte, bool) {
	groups := m.re.FindSubmatch(contents)
	if groups == nil {
		return nil, false
	}
	return groups[1], true
}
