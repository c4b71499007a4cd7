// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package docopt

import "fmt"

// Code is a stable diagnostic identifier, per spec.md's taxonomy (§7).
type Code string

const (
	ErrExcessiveDashes                  Code = "excessive_dashes"
	ErrExcessiveEqualSigns              Code = "excessive_equal_signs"
	ErrInvalidVariableName              Code = "invalid_variable_name"
	ErrInvalidOptionName                Code = "invalid_option_name"
	ErrBadOptionSeparator               Code = "bad_option_separator"
	ErrMissingCloseBracketInDefault     Code = "missing_close_bracket_in_default"
	ErrOptionDuplicatedInOptionsSection Code = "option_duplicated_in_options_section"
	ErrUnknownOption                    Code = "unknown_option"
	ErrAmbiguousPrefixMatch             Code = "ambiguous_prefix_match"
	ErrOptionHasMissingArgument         Code = "option_has_missing_argument"
	ErrOptionUnexpectedArgument         Code = "option_unexpected_argument"
	ErrWrongSeparator                   Code = "wrong_separator"
	ErrMissingUsageSection              Code = "missing_usage_section"
	ErrExcessiveUsageSections           Code = "excessive_usage_sections"
	ErrOneVariableMultipleConditions    Code = "one_variable_multiple_conditions"
)

// Diagnostic is a single error or warning record, carrying an optional
// position into either the doc source or the argv vector being processed.
type Diagnostic struct {
	// PosInSource, when ArgvIndex < 0, locates the problem in the doc text.
	PosInSource Range
	// ArgvIndex, when >= 0, locates the problem in the argv vector instead.
	ArgvIndex int
	Code      Code
	Text      string
}

func (d *Diagnostic) Error() string { return d.Text }

func newDocDiagnostic(code Code, pos Range, format string, args ...any) *Diagnostic {
	return &Diagnostic{PosInSource: pos, ArgvIndex: -1, Code: code, Text: fmt.Sprintf(format, args...)}
}

func newArgvDiagnostic(code Code, idx int, format string, args ...any) *Diagnostic {
	return &Diagnostic{ArgvIndex: idx, Code: code, Text: fmt.Sprintf(format, args...)}
}

// Diagnostics is a list of Diagnostic that itself satisfies error, the way
// Command.Validate's callers in the teacher aggregate ParseError values.
type Diagnostics []*Diagnostic

func (ds Diagnostics) Error() string {
	if len(ds) == 0 {
		return "no errors"
	}
	if len(ds) == 1 {
		return ds[0].Text
	}
	return fmt.Sprintf("%s (and %d more error(s))", ds[0].Text, len(ds)-1)
}

func (ds Diagnostics) hasStructural() bool {
	for _, d := range ds {
		if d.Code == ErrMissingUsageSection || d.Code == ErrExcessiveUsageSections {
			return true
		}
	}
	return false
}
