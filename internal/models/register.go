package models

import "strings"

// Field identifies one input of the registration form.
type Field string

// Registration form fields, in display order.
const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	FieldAadhar   Field = "aadhar"
	FieldMobile   Field = "mobile"
	FieldAddress  Field = "address"
)

// Fields lists every registration field in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPassword, FieldAadhar, FieldMobile, FieldAddress}

// RegistrationInput holds the raw values submitted with the registration form.
type RegistrationInput struct {
	Name     string
	Email    string
	Password string
	Aadhar   string
	Mobile   string
	Address  string
}

// Trimmed returns a copy with surrounding whitespace removed from every field except Password.
// Leading and trailing spaces in a password are kept as typed.
func (in RegistrationInput) Trimmed() RegistrationInput {
	return RegistrationInput{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		Aadhar:   strings.TrimSpace(in.Aadhar),
		Mobile:   strings.TrimSpace(in.Mobile),
		Address:  strings.TrimSpace(in.Address),
	}
}

// Value returns the submitted value of the given field.
func (in RegistrationInput) Value(f Field) string {
	switch f {
	case FieldName:
		return in.Name
	case FieldEmail:
		return in.Email
	case FieldPassword:
		return in.Password
	case FieldAadhar:
		return in.Aadhar
	case FieldMobile:
		return in.Mobile
	case FieldAddress:
		return in.Address
	}
	return ""
}

// ErrorCode is a stable machine-readable reason for a field error.
type ErrorCode string

const (
	CodeRequired         ErrorCode = "required"
	CodeInvalidChars     ErrorCode = "invalid_characters"
	CodeMalformed        ErrorCode = "malformed"
	CodeWrongDomain      ErrorCode = "wrong_domain"
	CodeTooShort         ErrorCode = "too_short"
	CodeMissingUppercase ErrorCode = "missing_uppercase"
	CodeMissingLowercase ErrorCode = "missing_lowercase"
	CodeMissingDigit     ErrorCode = "missing_digit"
	CodeMissingSpecial   ErrorCode = "missing_special"
	CodeWrongFormat      ErrorCode = "wrong_format"
)

// FieldError describes why a single field was rejected.
type FieldError struct {
	Field   Field     `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ValidationResult is the outcome of validating a RegistrationInput.
// A field without an entry in Errors passed all of its rules.
type ValidationResult struct {
	Valid  bool
	Errors map[Field]FieldError
}

// Error returns the error recorded for f, if any.
func (r ValidationResult) Error(f Field) (FieldError, bool) {
	fe, ok := r.Errors[f]
	return fe, ok
}

// EmailAndPasswordValid reports whether email and password both passed
// while some other field failed.
func (r ValidationResult) EmailAndPasswordValid() bool {
	_, emailErr := r.Errors[FieldEmail]
	_, passwordErr := r.Errors[FieldPassword]
	return !r.Valid && !emailErr && !passwordErr
}

// Messages returns field name to message for every failed field.
func (r ValidationResult) Messages() map[string]string {
	out := make(map[string]string, len(r.Errors))
	for f, fe := range r.Errors {
		out[string(f)] = fe.Message
	}
	return out
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Full name, letters and spaces only
	// required: true
	// example: Jane Doe
	Name string `json:"name"`

	// Gmail address
	// required: true
	// example: jane@gmail.com
	Email string `json:"email"`

	// Password with upper, lower, digit and special character
	// required: true
	// example: Abcdef1!
	Password string `json:"password"`

	// Aadhar number, 12 digits
	// required: true
	// example: 123456789012
	Aadhar string `json:"aadhar"`

	// Mobile number, 10 digits starting with 6-9
	// required: true
	// example: 9876543210
	Mobile string `json:"mobile"`

	// Postal address
	// required: true
	// example: 123 Main Street
	Address string `json:"address"`
}

// Input converts the request into a RegistrationInput.
func (r RegisterRequest) Input() RegistrationInput {
	return RegistrationInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Aadhar:   r.Aadhar,
		Mobile:   r.Mobile,
		Address:  r.Address,
	}
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User registered successfully
	Message string `json:"message"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// example: Invalid registration data
	Error string `json:"error"`

	// Per-field messages, present for validation failures
	Fields map[string]string `json:"fields,omitempty"`

	// Informational note, e.g. when email and password are already acceptable
	Info string `json:"info,omitempty"`
}
