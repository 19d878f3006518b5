package orders

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"tracker_orders/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ValidationResult is the outcome of validating a creation request.
type ValidationResult struct {
	OK     bool
	Errors []string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	return v
}

// ValidateCreation checks a creation request and both mandatory sub-objects.
// Every rule runs; all violations are returned together.
func ValidateCreation(req entities.OrderCreateRequest) ValidationResult {
	errs := structErrors(req, "")

	if req.ProductData == nil {
		errs = append(errs, "productData is required")
	} else {
		errs = append(errs, ValidateProductData(req.ProductData)...)
	}
	if req.PaymentData == nil {
		errs = append(errs, "paymentData is required")
	} else {
		errs = append(errs, ValidatePaymentData(req.PaymentData)...)
	}
	if req.Progress != nil {
		errs = append(errs, structErrors(*req.Progress, "progress.")...)
	}

	return ValidationResult{OK: len(errs) == 0, Errors: errs}
}

func ValidateProductData(p *entities.ProductData) []string {
	if p == nil {
		return []string{"productData is required"}
	}
	return structErrors(*p, "")
}

func ValidatePaymentData(p *entities.PaymentData) []string {
	if p == nil {
		return []string{"paymentData is required"}
	}
	return structErrors(*p, "")
}

// ValidateUpdate applies the same field rules to a partial update. Only the
// fields present in the request are checked.
func ValidateUpdate(req entities.OrderUpdateRequest) []string {
	return structErrors(req, "")
}

func structErrors(s any, prefix string) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, describe(prefix+fieldPath(fe), fe))
	}
	return out
}

// fieldPath drops the root struct name from the namespace: "OrderUpdateRequest.progress.board" -> "progress.board".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
