package validation

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/userregistry/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		FirstName: "Jane",
		LastName:  "Doe",
		Mobile:    "1234567890",
		Email:     "jane@example.com",
		Street:    "221B Baker Street",
		City:      "New York",
		State:     "New York",
		Country:   "United States",
		LoginID:   "Abcd1234",
		Password:  "Abc12!x",
	}
}

func requireFieldError(t *testing.T, err error, field, msg string) {
	t.Helper()
	require.Error(t, err)
	var fe *FieldError
	require.True(t, errors.As(err, &fe), "want *FieldError, got %T", err)
	assert.Equal(t, field, fe.Field)
	assert.Equal(t, msg, fe.Message)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestValidate_OK_TrimsFields(t *testing.T) {
	f := validForm()
	f.FirstName = "  Jane "
	f.Email = "\tjane@example.com\n"
	f.City = " New York "

	got, err := Validate(f)
	require.NoError(t, err)

	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "New York", got.City)
	assert.Equal(t, "221B Baker Street", got.Street)
}

func TestValidate_Required(t *testing.T) {
	tests := []struct {
		field string
		clear func(*Form)
		msg   string
	}{
		{"firstName", func(f *Form) { f.FirstName = "" }, "First Name is required"},
		{"lastName", func(f *Form) { f.LastName = "   " }, "Last Name is required"},
		{"mobile", func(f *Form) { f.Mobile = "" }, "Mobile is required"},
		{"email", func(f *Form) { f.Email = "\t" }, "Email is required"},
		{"street", func(f *Form) { f.Street = "" }, "Street is required"},
		{"city", func(f *Form) { f.City = "" }, "City is required"},
		{"state", func(f *Form) { f.State = " " }, "State is required"},
		{"country", func(f *Form) { f.Country = "" }, "Country is required"},
		{"loginId", func(f *Form) { f.LoginID = "" }, "Login ID is required"},
		{"password", func(f *Form) { f.Password = "  " }, "Password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f := validForm()
			tt.clear(&f)
			_, err := Validate(f)
			requireFieldError(t, err, tt.field, tt.msg)
		})
	}
}

func TestValidate_RequiredBeatsEarlierFormatError(t *testing.T) {
	f := validForm()
	f.FirstName = "J4ne" // format error in the first field
	f.Password = ""      // missing last field

	_, err := Validate(f)
	requireFieldError(t, err, "password", "Password is required")
}

func TestValidate_FirstMissingFieldWins(t *testing.T) {
	f := validForm()
	f.City = ""
	f.Mobile = ""

	_, err := Validate(f)
	requireFieldError(t, err, "mobile", "Mobile is required")
}

func TestValidate_Format(t *testing.T) {
	tests := []struct {
		name  string
		field string
		set   func(*Form)
		msg   string
	}{
		{"first name digits", "firstName", func(f *Form) { f.FirstName = "Jane2" }, "First Name should contain only alphabets"},
		{"first name space", "firstName", func(f *Form) { f.FirstName = "Mary Jane" }, "First Name should contain only alphabets"},
		{"last name hyphen", "lastName", func(f *Form) { f.LastName = "Doe-Smith" }, "Last Name should contain only alphabets"},
		{"mobile short", "mobile", func(f *Form) { f.Mobile = "12345" }, "Mobile must be exactly 10 digits"},
		{"mobile long", "mobile", func(f *Form) { f.Mobile = "12345678901" }, "Mobile must be exactly 10 digits"},
		{"mobile letters", "mobile", func(f *Form) { f.Mobile = "12345abcde" }, "Mobile must be exactly 10 digits"},
		{"email no at", "email", func(f *Form) { f.Email = "jane.example.com" }, "Invalid Email format"},
		{"email no dot", "email", func(f *Form) { f.Email = "jane@example" }, "Invalid Email format"},
		{"email inner space", "email", func(f *Form) { f.Email = "ja ne@example.com" }, "Invalid Email format"},
		{"street symbol", "street", func(f *Form) { f.Street = "Baker St." }, "Street can only contain alphabets, numbers and spaces"},
		{"city digits", "city", func(f *Form) { f.City = "District 9" }, "City should contain only alphabets"},
		{"state symbol", "state", func(f *Form) { f.State = "N/A" }, "State should contain only alphabets"},
		{"country digits", "country", func(f *Form) { f.Country = "C3PO" }, "Country should contain only alphabets"},
		{"login short", "loginId", func(f *Form) { f.LoginID = "abc" }, "Login ID must be 8 alphanumeric characters"},
		{"login long", "loginId", func(f *Form) { f.LoginID = "Abcd12345" }, "Login ID must be 8 alphanumeric characters"},
		{"login symbol", "loginId", func(f *Form) { f.LoginID = "Abcd123!" }, "Login ID must be 8 alphanumeric characters"},
		{"password no upper no symbol", "password", func(f *Form) { f.Password = "abc123" }, "Password must be 6+ chars with 1 uppercase, 1 lowercase & 1 special char"},
		{"password short", "password", func(f *Form) { f.Password = "Ab1!" }, "Password must be 6+ chars with 1 uppercase, 1 lowercase & 1 special char"},
		{"password no lower", "password", func(f *Form) { f.Password = "ABC12!X" }, "Password must be 6+ chars with 1 uppercase, 1 lowercase & 1 special char"},
		{"password no symbol", "password", func(f *Form) { f.Password = "Abc123x" }, "Password must be 6+ chars with 1 uppercase, 1 lowercase & 1 special char"},
		{"email no-break space", "email", func(f *Form) { f.Email = "a\u00a0b@c.de" }, "Invalid Email format"},
		{"email ideographic space", "email", func(f *Form) { f.Email = "ab@c\u3000d.de" }, "Invalid Email format"},
		{"password with newline", "password", func(f *Form) { f.Password = "Ab\ncd!" }, "Password must be 6+ chars with 1 uppercase, 1 lowercase & 1 special char"},
		{"password with carriage return", "password", func(f *Form) { f.Password = "Ab\rcd!" }, "Password must be 6+ chars with 1 uppercase, 1 lowercase & 1 special char"},
		{"password with line separator", "password", func(f *Form) { f.Password = "Ab\u2028cd!" }, "Password must be 6+ chars with 1 uppercase, 1 lowercase & 1 special char"},
		{"password five code units", "password", func(f *Form) { f.Password = "Abé!x" }, "Password must be 6+ chars with 1 uppercase, 1 lowercase & 1 special char"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.set(&f)
			_, err := Validate(f)
			requireFieldError(t, err, tt.field, tt.msg)
		})
	}
}

func TestValidate_FormatChecksRunInFieldOrder(t *testing.T) {
	f := validForm()
	f.Password = "weak"
	f.Mobile = "12345"
	f.Country = "C3PO"

	_, err := Validate(f)
	requireFieldError(t, err, "mobile", "Mobile must be exactly 10 digits")
}

func TestValidate_AcceptedValues(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Form)
	}{
		{"ten digit mobile", func(f *Form) { f.Mobile = "1234567890" }},
		{"eight char login", func(f *Form) { f.LoginID = "Abcd1234" }},
		{"all letter login", func(f *Form) { f.LoginID = "abcdefgh" }},
		{"password with underscore", func(f *Form) { f.Password = "Abc_12" }},
		{"password with space inside", func(f *Form) { f.Password = "Ab c12" }},
		{"password with non ascii", func(f *Form) { f.Password = "Abcdéf" }},
		{"loose email", func(f *Form) { f.Email = "a@b.c" }},
		{"street digits only", func(f *Form) { f.Street = "42" }},
		{"password counted in utf-16 units", func(f *Form) { f.Password = "Abc\U0001F600!" }},
		{"street with no-break space", func(f *Form) { f.Street = "1\u00a0Main St" }},
		{"city with tab", func(f *Form) { f.City = "New\tYork" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.set(&f)
			_, err := Validate(f)
			assert.NoError(t, err)
		})
	}
}

func TestFieldError_Error(t *testing.T) {
	err := &FieldError{Field: "email", Message: "Invalid Email format"}
	assert.Equal(t, "email: Invalid Email format", err.Error())
}

func TestValidate_TrimsUnicodeWhitespace(t *testing.T) {
	f := validForm()
	f.FirstName = "\ufeff\u00a0Jane\u3000"
	f.Email = "\u2028jane@example.com\u00a0"

	got, err := Validate(f)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "jane@example.com", got.Email)
}
