package demo

import (
	"github.com/dmitrymomot/valtree/pkg/validator"
)

// Signup is a registration form.
type Signup struct {
	Username    string            `json:"username" yaml:"username" toml:"username"`
	Email       string            `json:"email" yaml:"email" toml:"email"`
	Password    string            `json:"password" yaml:"password" toml:"password"`
	Confirm     string            `json:"password_confirmation" yaml:"password_confirmation" toml:"password_confirmation"`
	Age         int               `json:"age" yaml:"age" toml:"age"`
	Website     *string           `json:"website,omitempty" yaml:"website,omitempty" toml:"website,omitempty"`
	Referral    *string           `json:"referral_code,omitempty" yaml:"referral_code,omitempty" toml:"referral_code,omitempty"`
	Tags        []string          `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
	Preferences map[string]string `json:"preferences,omitempty" yaml:"preferences,omitempty" toml:"preferences,omitempty"`
	Address     Address           `json:"address" yaml:"address" toml:"address"`
}

var signupNames = validator.RenamesFromTags[Signup]("json")

var passwordsMatch = validator.Custom(func(s Signup) error {
	if s.Password != s.Confirm {
		return localizedError(MsgPasswordMismatch, "the passwords do not match")
	}
	return nil
})

// Validate implements validator.Validatable. Field errors are filed under the
// json names.
func (s Signup) Validate() error {
	return validator.NewObject(validator.WithRenames(signupNames)).
		Field("Username", validator.Value(s.Username, minLength(3), maxLength(20), usernamePattern)).
		Field("Email", validator.Value(s.Email, maxLength(254), emailPattern)).
		Field("Password", validator.Value(s.Password, minLength(8))).
		Field("Age", validator.Value(s.Age, between(13, 130))).
		Field("Website", validator.Optional(s.Website, validator.Each(maxLength(200), urlPattern))).
		Field("Referral", validator.Optional(s.Referral, validator.Each(uuidRule))).
		Field("Tags", validator.Slice(s.Tags,
			validator.Each(minLength(1), maxLength(16)),
			validator.MaxItems[string](5).WithLocalized(""),
			validator.UniqueItems[string]().WithLocalized(""),
		)).
		Field("Preferences", validator.Value(s.Preferences,
			validator.MaxProperties[string, string](10).WithLocalized(""))).
		Field("Address", validator.Nested(s.Address)).
		Check(validator.Apply(s, passwordsMatch)).
		Err()
}

// Address is a postal address.
type Address struct {
	Street  string `json:"street" yaml:"street" toml:"street"`
	City    string `json:"city" yaml:"city" toml:"city"`
	Zip     string `json:"zip" yaml:"zip" toml:"zip"`
	Country string `json:"country" yaml:"country" toml:"country"`
}

// Validate implements validator.Validatable.
func (a Address) Validate() error {
	return validator.NewObject().
		Field("street", validator.Value(a.Street, minLength(1), maxLength(100))).
		Field("city", validator.Value(a.City, minLength(1), maxLength(60))).
		Field("zip", validator.Value(a.Zip, zipPattern)).
		Field("country", validator.Value(a.Country, countries)).
		Err()
}
