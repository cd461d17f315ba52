package validation

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"ticket-marketplace/pkg/ethunit"
)

// ErrUnknownField means a form referenced a field with no rule.
var ErrUnknownField = errors.New("no validation rule for field")

// FieldError is a single failed rule.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Fields maps field names from Rules to raw user input.
type Fields map[string]string

// Validator evaluates Rules.
type Validator struct {
	v     *validator.Validate
	rules map[string]Rule
}

// New creates a Validator over the package rule table.
func New() *Validator {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("positive_int", positiveInt)
	_ = v.RegisterValidation("eth_amount", ethAmount)
	return &Validator{v: v, rules: Rules}
}

// Field checks one value against its rule. Input is trimmed first.
func (val *Validator) Field(name, value string) error {
	rule, ok := val.rules[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if err := val.v.Var(strings.TrimSpace(value), rule.Tag); err != nil {
		return &FieldError{Field: name, Message: rule.Message}
	}
	return nil
}

// Validate checks every field and returns all failures as a *multierror.Error,
// ordered by field name, or nil.
func (val *Validator) Validate(fields Fields) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var result *multierror.Error
	for _, name := range names {
		if err := val.Field(name, fields[name]); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Messages flattens a Validate error into field -> message.
func Messages(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}

	var merr *multierror.Error
	errs := []error{err}
	if errors.As(err, &merr) {
		errs = merr.Errors
	}
	for _, e := range errs {
		var fe *FieldError
		if errors.As(e, &fe) {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

func positiveInt(fl validator.FieldLevel) bool {
	n, err := strconv.ParseUint(fl.Field().String(), 10, 64)
	return err == nil && n > 0
}

func ethAmount(fl validator.FieldLevel) bool {
	wei, err := ethunit.ParseEther(fl.Field().String())
	return err == nil && wei.Sign() > 0
}
