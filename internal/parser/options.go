package parser

// Opt configures a parse. The zero Config is the default: no recovery
// limit, no unattached-doc-comment warnings suppressed.
type Opt func(*Config)

// Config holds parser configuration, built up from Opt values.
type Config struct {
	maxErrors       int // 0 means unlimited
	suppressDocWarn bool
	disableRecovery bool
}

// WithMaxErrors stops recording new diagnostics once n have been
// collected (the parse itself still runs to completion). Useful for
// bounding output on deeply malformed input.
func WithMaxErrors(n int) Opt {
	return func(c *Config) { c.maxErrors = n }
}

// WithoutDocCommentWarnings disables unattached_doc_comment diagnostics,
// for callers that intentionally feed doc-comment fragments (e.g. a
// formatter round-tripping a single declaration).
func WithoutDocCommentWarnings() Opt {
	return func(c *Config) { c.suppressDocWarn = true }
}

// WithoutRecovery disables the recoverable-error resynchronization anchors
// (findNextSource/findNextContractElement/findNextStatement): the parse
// halts at the first ParsingError instead of skipping ahead and
// continuing, so Tree.Errors carries exactly that one diagnostic. Useful
// for fuzzing (a single unambiguous failure point) and for a --strict CLI
// mode that should stop at the first malformed construct rather than
// report every downstream diagnostic recovery happens to turn up.
func WithoutRecovery() Opt {
	return func(c *Config) { c.disableRecovery = true }
}
