package demo

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

// Message ids of the demo's own failures.
const (
	MsgPasswordMismatch = "demo.password_mismatch"
	MsgOrderTotal       = "demo.order_total"
	MsgUUID             = "validation.uuid"
	MsgRange            = "validation.range"
)

var (
	usernamePattern = validator.MustPattern(`^[a-z0-9_]+$`).WithLocalized("")
	emailPattern    = validator.MustPattern(`^[^@\s]+@[^@\s]+\.[^@\s]+$`).WithLocalized("")
	urlPattern      = validator.MustPattern(`^https?://\S+$`).WithLocalized("")
	zipPattern      = validator.MustPattern(`^\d{5}$`).WithLocalized("")
	skuPattern      = validator.MustPattern(`^[A-Z]{3}-\d{4}$`).WithLocalized("")

	countries = validator.Enumerate("DE", "FR", "GB", "US").WithLocalized("")
	statuses  = validator.Enumerate("new", "paid", "shipped", "cancelled").WithLocalized("")

	uuidRule = validator.Custom(func(v string) error {
		if _, err := uuid.Parse(v); err != nil {
			return localizedError(MsgUUID, "the value must be a UUID", "value", v)
		}
		return nil
	})
)

func minLength(n int) validator.Rule[string, validator.MinLengthParams] {
	return validator.MinLength(n).WithLocalized("")
}

func maxLength(n int) validator.Rule[string, validator.MaxLengthParams] {
	return validator.MaxLength(n).WithLocalized("")
}

func between[T validator.Number](lo, hi T) validator.Rule[T, validator.RangeParams[T]] {
	return validator.Range(validator.Inclusive(lo), validator.Inclusive(hi)).WithLocalized(MsgRange)
}

// localizedError builds a custom failure rendered from id, with text as the
// untranslated fallback.
func localizedError(id, text string, args ...string) validator.Error {
	return validator.NewError(validator.Message[validator.CustomParams]{
		Params: validator.CustomParams{Message: text},
		Format: validator.LocalizedFormat[validator.CustomParams](id, args...),
	})
}
