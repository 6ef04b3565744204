package revision

// PatternChoice selects one revision-code family. The catalog entries are
// a closed set; PatternFixed and PatternCustom carry their own parameters
// in Settings.
type PatternChoice string

const (
	// PatternXX is a bare two-digit numeric code: 00, 01, 02, ...
	PatternXX PatternChoice = "xx"
	// PatternAlphabet is a letters-only code: A..Z, AA, AB, ...
	PatternAlphabet PatternChoice = "alphabet"
	// PatternIFC is a "C"-prefixed two-digit numeric code: C00, C01, ...
	PatternIFC PatternChoice = "ifc"
	// PatternP0x is a "P"-prefixed two-digit numeric code: P00, P01, ...
	PatternP0x PatternChoice = "p0x"
	// PatternFixed matches exactly one literal code (Settings.FixedCode).
	PatternFixed PatternChoice = "fixed"
	// PatternCustom builds a rule from Settings.Custom.
	PatternCustom PatternChoice = "custom"
)

// CustomPattern describes a user-defined incremental code family.
type CustomPattern struct {
	// Prefix is the literal text before the counter.
	Prefix string
	// CoreExpr is the regular expression for the counter core, e.g. `(\d+)`.
	// A capture group is added automatically if the expression has none.
	CoreExpr string
	// Padding is the zero-padding width for base-10 counters (0 = none).
	Padding int
	// Base is the counter numeral base: 10 (digits) or 26 (letters A=0..Z=25).
	Base int
	// Start is the core of the first expected code, e.g. "0" or "A".
	Start string
	// Step is the counter increment between consecutive codes (default 1).
	Step int
}

// Settings is the immutable configuration for one reconciliation run.
// All rows share a single Settings value; nothing in the engine mutates it.
type Settings struct {
	// Pattern selects the revision-code family.
	Pattern PatternChoice
	// FixedCode is the literal code for PatternFixed.
	FixedCode string
	// Custom carries the parameters for PatternCustom.
	Custom *CustomPattern

	// DescriptionCheck enables description comparison against the
	// generated latest entry.
	DescriptionCheck bool
	// LatestDescription is the description the generated latest entry
	// should carry. Only used when DescriptionCheck is set.
	LatestDescription string

	// DateCheck enables date parsing and comparison for entry dates.
	// Header reference dates are parsed regardless.
	DateCheck bool
	// DateStrict parses entry dates against exactly DateFormat instead of
	// fuzzy extraction.
	DateStrict bool
	// DateFormat names the strict format: DD/MM/YY, DD/MM/YYYY,
	// DD-MMM-YYYY or YYYY-MM-DD.
	DateFormat string
	// LatestDate is the date the generated latest entry should carry.
	LatestDate string

	// SourceAColumns are the Source A column identities, one per revision
	// slot, in revision order. Cells hold "code | description | date".
	SourceAColumns []string
	// SourceBColumns are the Source B column identities in revision order.
	// The identity itself encodes "description|reference date"; the cell
	// holds the bare code.
	SourceBColumns []string

	// GenerateLatest synthesizes the revision entry a well-formed Source B
	// should contain next and appends it for comparison.
	GenerateLatest bool
}

// Enabled reports whether revision checking is configured at all.
// A nil Settings or one without both column lists is the explicit
// disabled state: the engine is bypassed entirely.
func (s *Settings) Enabled() bool {
	return s != nil && len(s.SourceAColumns) > 0 && len(s.SourceBColumns) > 0
}
