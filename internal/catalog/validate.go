// Package catalog implements the pure query layer over catalogue data:
// entity validation, product filtering, and the geographic roll-up.
// Nothing here performs I/O or mutates its inputs.
package catalog

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"marketplace-catalog/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so errors line up with the API shapes
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateProduct checks p against the catalogue invariants and returns a
// *model.ValidationError describing the first violation.
func ValidateProduct(p model.Product) error {
	if err := checkFinite(p.ID, "price", p.Price); err != nil {
		return err
	}
	if err := checkFinite(p.ID, "rating", p.Rating); err != nil {
		return err
	}
	if p.OriginalPrice != nil {
		if err := checkFinite(p.ID, "originalPrice", *p.OriginalPrice); err != nil {
			return err
		}
	}
	if p.Discount != nil {
		if err := checkFinite(p.ID, "discount", *p.Discount); err != nil {
			return err
		}
	}

	if err := validate.Struct(p); err != nil {
		return toValidationError(p.ID, err)
	}

	if p.IsOnSale && p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		return model.NewValidationError(p.ID, "originalPrice", "must not be below price while on sale", *p.OriginalPrice)
	}

	return nil
}

// IsValidProduct reports whether p satisfies every catalogue invariant.
func IsValidProduct(p model.Product) bool {
	return ValidateProduct(p) == nil
}

// ValidateSeller checks s against the seller invariants.
func ValidateSeller(s model.Seller) error {
	if err := checkFinite(s.ID, "rating", s.Rating); err != nil {
		return err
	}
	if err := validate.Struct(s); err != nil {
		return toValidationError(s.ID, err)
	}
	return nil
}

func checkFinite(id, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return model.NewValidationError(id, field, "must be a finite number", v)
	}
	return nil
}

func toValidationError(id string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return model.NewValidationError(id, fieldPath(fe.Namespace()), reason(fe), fe.Value())
	}
	return model.NewValidationError(id, "", err.Error(), nil)
}

// fieldPath strips the struct name from a validator namespace ("Product.reviews[0].rating").
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	}
	return "failed " + fe.Tag()
}
