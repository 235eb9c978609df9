package validators

import (
	"strings"
	"testing"

	"github.com/sbilibin2017/gw-user-registration/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() models.RegistrationInput {
	return models.RegistrationInput{
		Name:     "Jane Doe",
		Email:    "jane@gmail.com",
		Password: "Abcdef1!",
		Aadhar:   "123456789012",
		Mobile:   "9876543210",
		Address:  "123 Main Street",
	}
}

func TestRegistrationValidator_Valid(t *testing.T) {
	v := NewRegistrationValidator()

	res := v.Validate(validInput())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.False(t, res.EmailAndPasswordValid())
}

func TestRegistrationValidator_Fields(t *testing.T) {
	v := NewRegistrationValidator()

	tests := []struct {
		name     string
		mutate   func(in *models.RegistrationInput)
		field    models.Field
		wantCode models.ErrorCode
		wantMsg  string
	}{
		{"name empty", func(in *models.RegistrationInput) { in.Name = "" }, models.FieldName, models.CodeRequired, "Name is required"},
		{"name digits", func(in *models.RegistrationInput) { in.Name = "Jane2" }, models.FieldName, models.CodeInvalidChars, "Only letters and spaces allowed"},
		{"name punctuation", func(in *models.RegistrationInput) { in.Name = "O'Brien" }, models.FieldName, models.CodeInvalidChars, "Only letters and spaces allowed"},

		{"email empty", func(in *models.RegistrationInput) { in.Email = "" }, models.FieldEmail, models.CodeRequired, "Email is required"},
		{"email malformed", func(in *models.RegistrationInput) { in.Email = "not-an-email" }, models.FieldEmail, models.CodeMalformed, "Invalid email format"},
		{"email malformed gmail suffix", func(in *models.RegistrationInput) { in.Email = "@gmail.com" }, models.FieldEmail, models.CodeMalformed, "Invalid email format"},
		{"email other domain", func(in *models.RegistrationInput) { in.Email = "user@yahoo.com" }, models.FieldEmail, models.CodeWrongDomain, "Only Gmail addresses are allowed"},
		{"email upper-case domain", func(in *models.RegistrationInput) { in.Email = "user@GMAIL.COM" }, models.FieldEmail, models.CodeWrongDomain, "Only Gmail addresses are allowed"},

		{"password empty", func(in *models.RegistrationInput) { in.Password = "" }, models.FieldPassword, models.CodeRequired, "Password is required"},
		{"password short", func(in *models.RegistrationInput) { in.Password = "Ab1!" }, models.FieldPassword, models.CodeTooShort, "Password must be at least 8 characters"},
		{"password short wins over missing classes", func(in *models.RegistrationInput) { in.Password = "abc" }, models.FieldPassword, models.CodeTooShort, "Password must be at least 8 characters"},
		{"password no upper", func(in *models.RegistrationInput) { in.Password = "abcdef1!" }, models.FieldPassword, models.CodeMissingUppercase, "Password must contain an uppercase letter"},
		{"password no lower", func(in *models.RegistrationInput) { in.Password = "ABCDEF1!" }, models.FieldPassword, models.CodeMissingLowercase, "Password must contain a lowercase letter"},
		{"password no digit", func(in *models.RegistrationInput) { in.Password = "Abcdefg!" }, models.FieldPassword, models.CodeMissingDigit, "Password must contain a number"},
		{"password no special", func(in *models.RegistrationInput) { in.Password = "Abcdefg1" }, models.FieldPassword, models.CodeMissingSpecial, "Password must contain a special character"},
		{"password underscore is not special", func(in *models.RegistrationInput) { in.Password = "Abcdef1_" }, models.FieldPassword, models.CodeMissingSpecial, "Password must contain a special character"},
		{"password spaces only", func(in *models.RegistrationInput) { in.Password = "        " }, models.FieldPassword, models.CodeMissingUppercase, "Password must contain an uppercase letter"},

		{"aadhar empty", func(in *models.RegistrationInput) { in.Aadhar = "" }, models.FieldAadhar, models.CodeRequired, "Aadhar number is required"},
		{"aadhar 11 digits", func(in *models.RegistrationInput) { in.Aadhar = "12345678901" }, models.FieldAadhar, models.CodeWrongFormat, "Aadhar must be exactly 12 digits"},
		{"aadhar 13 digits", func(in *models.RegistrationInput) { in.Aadhar = "1234567890123" }, models.FieldAadhar, models.CodeWrongFormat, "Aadhar must be exactly 12 digits"},
		{"aadhar letters", func(in *models.RegistrationInput) { in.Aadhar = "12345678901a" }, models.FieldAadhar, models.CodeWrongFormat, "Aadhar must be exactly 12 digits"},

		{"mobile empty", func(in *models.RegistrationInput) { in.Mobile = "" }, models.FieldMobile, models.CodeRequired, "Mobile number is required"},
		{"mobile starts with 5", func(in *models.RegistrationInput) { in.Mobile = "5123456789" }, models.FieldMobile, models.CodeWrongFormat, "Mobile must be 10 digits starting with 6-9"},
		{"mobile 9 digits", func(in *models.RegistrationInput) { in.Mobile = "912345678" }, models.FieldMobile, models.CodeWrongFormat, "Mobile must be 10 digits starting with 6-9"},

		{"address empty", func(in *models.RegistrationInput) { in.Address = "" }, models.FieldAddress, models.CodeRequired, "Address is required"},
		{"address short", func(in *models.RegistrationInput) { in.Address = "Main St" }, models.FieldAddress, models.CodeTooShort, "Please enter a complete address (at least 10 characters)"},
		{"address short after trimming", func(in *models.RegistrationInput) { in.Address = "   Main St   " }, models.FieldAddress, models.CodeTooShort, "Please enter a complete address (at least 10 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			res := v.Validate(in)

			assert.False(t, res.Valid)
			require.Len(t, res.Errors, 1, "only the mutated field should fail")
			fe, ok := res.Error(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.wantCode, fe.Code)
			assert.Equal(t, tt.wantMsg, fe.Message)
		})
	}
}

func TestRegistrationValidator_AcceptedValues(t *testing.T) {
	v := NewRegistrationValidator()

	tests := []struct {
		name   string
		mutate func(in *models.RegistrationInput)
	}{
		{"gmail address", func(in *models.RegistrationInput) { in.Email = "user@gmail.com" }},
		{"aadhar 12 digits", func(in *models.RegistrationInput) { in.Aadhar = "123456789012" }},
		{"mobile starts with 9", func(in *models.RegistrationInput) { in.Mobile = "9123456789" }},
		{"mobile starts with 6", func(in *models.RegistrationInput) { in.Mobile = "6000000000" }},
		{"address exactly 10 characters", func(in *models.RegistrationInput) { in.Address = "1234567890" }},
		{"address 10 multibyte characters", func(in *models.RegistrationInput) { in.Address = strings.Repeat("é", 10) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			res := v.Validate(in)

			assert.True(t, res.Valid, "unexpected errors: %v", res.Errors)
			assert.Empty(t, res.Errors)
		})
	}
}

func TestRegistrationValidator_SpecialCharacterSet(t *testing.T) {
	v := NewRegistrationValidator()

	for _, c := range PasswordSpecialChars {
		in := validInput()
		in.Password = "Abcdef1" + string(c)

		res := v.Validate(in)

		_, failed := res.Error(models.FieldPassword)
		assert.False(t, failed, "special character %q should be accepted", c)
	}
}

func TestRegistrationValidator_PasswordNotTrimmed(t *testing.T) {
	v := NewRegistrationValidator()

	// 8 bytes only because of the leading space.
	in := validInput()
	in.Password = " Abc12!@"
	res := v.Validate(in)
	_, failed := res.Error(models.FieldPassword)
	assert.False(t, failed)

	in.Password = strings.TrimSpace(in.Password)
	res = v.Validate(in)
	fe, failed := res.Error(models.FieldPassword)
	require.True(t, failed)
	assert.Equal(t, models.CodeTooShort, fe.Code)
}

func TestRegistrationValidator_AllFieldsChecked(t *testing.T) {
	v := NewRegistrationValidator()

	res := v.Validate(models.RegistrationInput{})

	assert.False(t, res.Valid)
	require.Len(t, res.Errors, len(models.Fields))
	for _, f := range models.Fields {
		fe, ok := res.Error(f)
		require.True(t, ok, "field %s", f)
		assert.Equal(t, models.CodeRequired, fe.Code, "field %s", f)
	}
}

func TestRegistrationValidator_EmailAndPasswordValid(t *testing.T) {
	v := NewRegistrationValidator()

	in := validInput()
	in.Mobile = "5123456789"
	in.Name = "J4ne"
	res := v.Validate(in)
	assert.False(t, res.Valid)
	assert.True(t, res.EmailAndPasswordValid())

	in = validInput()
	in.Email = "jane@yahoo.com"
	res = v.Validate(in)
	assert.False(t, res.Valid)
	assert.False(t, res.EmailAndPasswordValid())

	in = validInput()
	in.Password = "short"
	in.Mobile = ""
	res = v.Validate(in)
	assert.False(t, res.EmailAndPasswordValid())
}

func TestRegistrationValidator_Idempotent(t *testing.T) {
	v := NewRegistrationValidator()

	in := models.RegistrationInput{
		Name:     "Jane 2",
		Email:    "jane@yahoo.com",
		Password: "abc",
		Aadhar:   "1234",
		Mobile:   "5123456789",
		Address:  "short",
	}

	first := v.Validate(in)
	second := v.Validate(in)

	assert.Equal(t, first, second)
}
