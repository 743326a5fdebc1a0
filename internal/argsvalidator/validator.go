package argsvalidator

import "strings"

// Messages reported by Validate.
const (
	MsgArgumentCount = "Incorrect number of arguments entered"
	MsgFilePath      = "No file path entered please enter a file path"
	MsgFilterOption  = "No arguments detected please enter a filtration option"
)

// FilterLetters are the only characters accepted in the filter option string.
const FilterLetters = "vst"

// FieldError describes a single failed rule.
type FieldError struct {
	Field   string
	Message string
}

// Result collects the failed rules of one validation run.
type Result struct {
	Errors []FieldError
}

// IsValid reports whether no rule failed.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

// String joins the error messages, one per line.
func (r Result) String() string {
	messages := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		messages = append(messages, e.Message)
	}
	return strings.Join(messages, "\n")
}

// Validator checks the CLI argument list.
type Validator interface {
	Validate(args []string) Result
}

type rule func(args []string) (FieldError, bool)

type argsValidator struct {
	rules []rule
}

// New returns the validator for "<filePath> <filterOptions>".
func New() Validator {
	return &argsValidator{
		rules: []rule{
			checkArgumentCount,
			checkFilePath,
			checkFilterOptions,
		},
	}
}

// Validate runs every rule and collects the failures in rule order.
func (v *argsValidator) Validate(args []string) Result {
	var result Result
	for _, check := range v.rules {
		if fieldErr, failed := check(args); failed {
			result.Errors = append(result.Errors, fieldErr)
		}
	}
	return result
}

func checkArgumentCount(args []string) (FieldError, bool) {
	if len(args) == 2 {
		return FieldError{}, false
	}
	return FieldError{Field: "args", Message: MsgArgumentCount}, true
}

func checkFilePath(args []string) (FieldError, bool) {
	if len(args) == 0 || args[0] != "" {
		return FieldError{}, false
	}
	return FieldError{Field: "filePath", Message: MsgFilePath}, true
}

func checkFilterOptions(args []string) (FieldError, bool) {
	if len(args) < 2 || IsValidFilterOption(args[1]) {
		return FieldError{}, false
	}
	return FieldError{Field: "filterOptions", Message: MsgFilterOption}, true
}

// IsValidFilterOption reports whether s contains only filter letters. The
// empty string is valid and selects no filters.
func IsValidFilterOption(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(FilterLetters, r) {
			return false
		}
	}
	return true
}
