package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-user-registration/internal/models"
)

const (
	// RequiredEmailSuffix is the only accepted email domain.
	RequiredEmailSuffix = "@gmail.com"
	// PasswordSpecialChars lists the characters a password must include at least one of.
	PasswordSpecialChars = `!@#$%^&*(),.?":{}|<>`

	minPasswordLength = 8
	minAddressLength  = 10
)

var (
	namePattern   = regexp.MustCompile(`^[a-zA-Z ]+$`)
	aadharPattern = regexp.MustCompile(`^[0-9]{12}$`)
	mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	digitPattern  = regexp.MustCompile(`[0-9]`)
)

// rule rejects a value when fails returns true.
type rule struct {
	code    models.ErrorCode
	message string
	fails   func(value string) bool
}

// fieldRules is the ordered rule list for a single field. The required
// check always runs first; after that the first failing rule wins.
type fieldRules struct {
	field    models.Field
	required string
	rules    []rule
}

// RegistrationValidator checks a RegistrationInput against the form rules.
// It holds no per-call state and is safe for concurrent use.
type RegistrationValidator struct {
	fields []fieldRules
}

// NewRegistrationValidator creates a RegistrationValidator.
func NewRegistrationValidator() *RegistrationValidator {
	v := validator.New()

	return &RegistrationValidator{
		fields: []fieldRules{
			{
				field:    models.FieldName,
				required: "Name is required",
				rules: []rule{
					{models.CodeInvalidChars, "Only letters and spaces allowed", not(namePattern.MatchString)},
				},
			},
			{
				field:    models.FieldEmail,
				required: "Email is required",
				rules: []rule{
					{models.CodeMalformed, "Invalid email format", func(s string) bool { return v.Var(s, "email") != nil }},
					{models.CodeWrongDomain, "Only Gmail addresses are allowed", func(s string) bool { return !strings.HasSuffix(s, RequiredEmailSuffix) }},
				},
			},
			{
				field:    models.FieldPassword,
				required: "Password is required",
				rules: []rule{
					{models.CodeTooShort, "Password must be at least 8 characters", func(s string) bool { return len(s) < minPasswordLength }},
					{models.CodeMissingUppercase, "Password must contain an uppercase letter", not(upperPattern.MatchString)},
					{models.CodeMissingLowercase, "Password must contain a lowercase letter", not(lowerPattern.MatchString)},
					{models.CodeMissingDigit, "Password must contain a number", not(digitPattern.MatchString)},
					{models.CodeMissingSpecial, "Password must contain a special character", func(s string) bool { return !strings.ContainsAny(s, PasswordSpecialChars) }},
				},
			},
			{
				field:    models.FieldAadhar,
				required: "Aadhar number is required",
				rules: []rule{
					{models.CodeWrongFormat, "Aadhar must be exactly 12 digits", not(aadharPattern.MatchString)},
				},
			},
			{
				field:    models.FieldMobile,
				required: "Mobile number is required",
				rules: []rule{
					{models.CodeWrongFormat, "Mobile must be 10 digits starting with 6-9", not(mobilePattern.MatchString)},
				},
			},
			{
				field:    models.FieldAddress,
				required: "Address is required",
				rules: []rule{
					{models.CodeTooShort, "Please enter a complete address (at least 10 characters)", func(s string) bool {
						return utf8.RuneCountInString(strings.TrimSpace(s)) < minAddressLength
					}},
				},
			},
		},
	}
}

// Validate checks every field of input and collects one error per failing field.
// Values are checked as given; callers trim them beforehand where appropriate.
func (rv *RegistrationValidator) Validate(input models.RegistrationInput) models.ValidationResult {
	result := models.ValidationResult{
		Valid:  true,
		Errors: make(map[models.Field]models.FieldError),
	}

	for _, fr := range rv.fields {
		if fe, failed := fr.check(input.Value(fr.field)); failed {
			result.Errors[fr.field] = fe
			result.Valid = false
		}
	}

	return result
}

func (fr fieldRules) check(value string) (models.FieldError, bool) {
	if value == "" {
		return models.FieldError{Field: fr.field, Code: models.CodeRequired, Message: fr.required}, true
	}
	for _, r := range fr.rules {
		if r.fails(value) {
			return models.FieldError{Field: fr.field, Code: r.code, Message: r.message}, true
		}
	}
	return models.FieldError{}, false
}

func not(match func(string) bool) func(string) bool {
	return func(s string) bool { return !match(s) }
}
