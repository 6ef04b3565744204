package revision

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PatternKind distinguishes counting code families from literal ones.
type PatternKind string

const (
	// KindFixed matches a single literal code and carries no counter.
	KindFixed PatternKind = "fixed"
	// KindIncremental encodes an ordinal counter (numeric or alphabetic).
	KindIncremental PatternKind = "incremental"
)

// PatternRule encodes one revision-code family. It can validate a code,
// decode its counter value, and generate the code for a given counter.
//
// For every counter n the rule can encode, Decode(Encode(n)) == n.
type PatternRule struct {
	// Name identifies the rule for diagnostics.
	Name string
	// Kind is fixed or incremental.
	Kind PatternKind
	// Prefix is the literal text before the counter core.
	Prefix string
	// Base is the counter numeral base, 10 or 26.
	Base int
	// Pad is the zero-padding width for base-10 counters.
	Pad int
	// Start is the counter value of the first expected code.
	Start int
	// Step is the counter increment between consecutive codes.
	Step int

	re    *regexp.Regexp
	fixed string
	group int
}

// Matches reports whether text, after trimming, fully matches the rule.
// Partial matches never count.
func (r *PatternRule) Matches(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if r.Kind == KindFixed {
		return text == r.fixed
	}
	return r.re.MatchString(text)
}

// Decode extracts the counter value from a code. Fixed rules and codes
// that do not match the rule decode to nothing.
func (r *PatternRule) Decode(text string) (int, bool) {
	if r.Kind != KindIncremental {
		return 0, false
	}
	m := r.re.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil || r.group >= len(m) {
		return 0, false
	}
	core := m[r.group]
	switch r.Base {
	case 10:
		v, err := strconv.Atoi(core)
		if err != nil {
			return 0, false
		}
		return v, true
	case 26:
		total := 0
		for _, ch := range strings.ToUpper(core) {
			if ch < 'A' || ch > 'Z' {
				return 0, false
			}
			total = total*26 + int(ch-'A')
		}
		return total, true
	}
	return 0, false
}

// Encode produces the code for a counter value. Fixed rules always yield
// their literal. Base-26 encoding fails for negative counters.
func (r *PatternRule) Encode(counter int) (string, error) {
	if r.Kind != KindIncremental {
		return r.fixed, nil
	}
	var core string
	switch r.Base {
	case 10:
		core = strconv.Itoa(counter)
		if r.Pad > 0 && len(core) < r.Pad {
			core = strings.Repeat("0", r.Pad-len(core)) + core
		}
	case 26:
		if counter < 0 {
			return "", fmt.Errorf("counter must be non-negative for alphabetical increments")
		}
		var digits []byte
		value := counter
		for {
			digits = append(digits, byte('A'+value%26))
			value /= 26
			if value <= 0 {
				break
			}
		}
		for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
			digits[i], digits[j] = digits[j], digits[i]
		}
		core = string(digits)
	default:
		return "", fmt.Errorf("unsupported base %d", r.Base)
	}
	return r.Prefix + core, nil
}

// NextAfter returns the code expected to follow the given one, or false
// if the code does not decode or the rule is not incremental.
func (r *PatternRule) NextAfter(text string) (string, bool) {
	if r.Kind != KindIncremental {
		return "", false
	}
	current, ok := r.Decode(text)
	if !ok {
		return "", false
	}
	next, err := r.Encode(current + r.Step)
	if err != nil {
		return "", false
	}
	return next, true
}

// BuildPatternRule resolves the pattern selection in Settings into a rule.
// Configuration problems (missing fixed literal, invalid custom core
// expression, unsupported base) are reported here, before any row is
// processed.
func BuildPatternRule(s *Settings) (*PatternRule, error) {
	switch s.Pattern {
	case PatternFixed:
		if s.FixedCode == "" {
			return nil, fmt.Errorf("fixed pattern requires a literal code")
		}
		return &PatternRule{Name: "Fixed", Kind: KindFixed, fixed: s.FixedCode}, nil
	case PatternXX:
		return catalogRule("XX", "", 2), nil
	case PatternAlphabet:
		return &PatternRule{
			Name:  "Alphabet",
			Kind:  KindIncremental,
			Base:  26,
			Step:  1,
			re:    regexp.MustCompile(`^([A-Z]+)$`),
			group: 1,
		}, nil
	case PatternIFC:
		return catalogRule("IFC", "C", 2), nil
	case PatternP0x, "":
		return catalogRule("P0x", "P", 2), nil
	case PatternCustom:
		return buildCustomRule(s.Custom)
	}
	return nil, fmt.Errorf("unknown pattern choice %q", s.Pattern)
}

// catalogRule builds a base-10 rule with a literal prefix and fixed width.
func catalogRule(name, prefix string, width int) *PatternRule {
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d{` + strconv.Itoa(width) + `})$`)
	return &PatternRule{
		Name:   name,
		Kind:   KindIncremental,
		Prefix: prefix,
		Base:   10,
		Pad:    width,
		Step:   1,
		re:     re,
		group:  1,
	}
}

func buildCustomRule(c *CustomPattern) (*PatternRule, error) {
	if c == nil {
		c = &CustomPattern{}
	}
	core := c.CoreExpr
	if core == "" {
		core = `(\d+)`
	}
	if !strings.Contains(core, "(") {
		core = "(" + core + ")"
	}
	re, err := regexp.Compile(`^` + regexp.QuoteMeta(c.Prefix) + core + `$`)
	if err != nil {
		return nil, fmt.Errorf("invalid custom core expression %q: %w", c.CoreExpr, err)
	}

	base := c.Base
	if base == 0 {
		base = 10
	}
	if base != 10 && base != 26 {
		return nil, fmt.Errorf("unsupported base %d for custom pattern", base)
	}

	var start int
	if base == 26 {
		token := c.Start
		if token == "" {
			token = "A"
		}
		for _, ch := range strings.ToUpper(token) {
			if ch < 'A' || ch > 'Z' {
				return nil, fmt.Errorf("invalid base-26 start value %q", c.Start)
			}
			start = start*26 + int(ch-'A')
		}
	} else if c.Start != "" {
		start, err = strconv.Atoi(c.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid start value %q: %w", c.Start, err)
		}
	}

	step := c.Step
	if step == 0 {
		step = 1
	}

	return &PatternRule{
		Name:   "Custom",
		Kind:   KindIncremental,
		Prefix: c.Prefix,
		Base:   base,
		Pad:    c.Padding,
		Start:  start,
		Step:   step,
		re:     re,
		group:  1,
	}, nil
}
