package core

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/eskrenkovic/mediator-go"
)

// FieldError reports a single violated validation rule.
type FieldError struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
}

// ValidationError aggregates every rule violation found in one pass over
// a payload. It is a normal, reportable outcome - handlers translate it
// into a 400 response, never a fault.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed:")
	for _, fieldErr := range e.Errors {
		b.WriteString(fmt.Sprintf(" '%s: %s'", fieldErr.PropertyName, fieldErr.ErrorMessage))
	}
	return b.String()
}

// Rule is a single independent constraint on a payload. Rules never
// short-circuit each other.
type Rule[T any] struct {
	Property string
	Message  string
	IsValid  func(T) bool
}

type RuleSet[T any] struct {
	rules []Rule[T]
}

func Rules[T any](rules ...Rule[T]) RuleSet[T] {
	return RuleSet[T]{rules: rules}
}

// Validate evaluates every rule against the payload and aggregates all
// failures. A nil return means the payload satisfies the whole rule set.
func (s RuleSet[T]) Validate(payload T) error {
	var fieldErrors []FieldError
	for _, rule := range s.rules {
		if !rule.IsValid(payload) {
			fieldErrors = append(fieldErrors, FieldError{
				PropertyName: rule.Property,
				ErrorMessage: rule.Message,
			})
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}

	return ValidationError{Errors: fieldErrors}
}

type Validator interface {
	Validate() error
}

var _ mediator.PipelineBehavior = (*RequestValidationBehavior)(nil)

// RequestValidationBehavior validates write requests before their handler
// runs. Requests without a Validate implementation pass automatically.
type RequestValidationBehavior struct{}

func (b *RequestValidationBehavior) Handle(
	ctx context.Context,
	request interface{},
	next mediator.RequestHandlerFunc,
) (interface{}, error) {
	if request, ok := request.(Validator); ok {
		if err := request.Validate(); err != nil {
			return nil, NewCommandError(http.StatusBadRequest, err, WithReason("request validation failed"))
		}
	}

	return next(ctx, request)
}
