// Package validation holds the pure field checks behind the sign-up, login
// and visitor forms. Every check takes plain values and returns nil or a
// *Error naming the field and the message shown to the user.
package validation

// Field names a form field.
type Field string

const (
	FieldFirstName       Field = "firstName"
	FieldLastName        Field = "lastName"
	FieldPhone           Field = "phone"
	FieldEmail           Field = "email"
	FieldAddress         Field = "address"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"

	FieldVisitorName  Field = "visitorName"
	FieldVisitorPhone Field = "visitorPhone"
	FieldVisitorEmail Field = "visitorEmail"
	FieldGender       Field = "gender"
	FieldPurpose      Field = "purpose"
	FieldReference    Field = "reference"
)

// Error is a user-correctable problem with one field.
type Error struct {
	Field   Field
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

const passwordRules = "Password must be at least 6 characters and include:\n" +
	"- Uppercase letter\n- Lowercase letter\n- Number\n- Special character"

// Sign-up rules, in the order Profile checks them.
var (
	ErrFirstNameRequired  = &Error{Field: FieldFirstName, Message: "First name is required."}
	ErrLastNameRequired   = &Error{Field: FieldLastName, Message: "Last name is required."}
	ErrPhoneLength        = &Error{Field: FieldPhone, Message: "Phone number must be exactly 10 digits"}
	ErrEmailFormat        = &Error{Field: FieldEmail, Message: "Please enter a valid email address."}
	ErrAddressRequired    = &Error{Field: FieldAddress, Message: "Address is required."}
	ErrPasswordComplexity = &Error{Field: FieldPassword, Message: passwordRules}
	ErrPasswordMismatch   = &Error{Field: FieldConfirmPassword, Message: "Passwords do not match."}
)

// Visitor form rules.
var (
	ErrVisitorNameRequired = &Error{Field: FieldVisitorName, Message: "Please enter a visitor name."}
	ErrVisitorPhoneLength  = &Error{Field: FieldVisitorPhone, Message: "Phone number must be exactly 10 digits"}
	ErrVisitorEmailFormat  = &Error{Field: FieldVisitorEmail, Message: "Please enter a valid email address."}
	ErrUnknownGender       = &Error{Field: FieldGender, Message: "Gender must be Male, Female or Other."}
	ErrUnknownPurpose      = &Error{Field: FieldPurpose, Message: "Purpose must be Meeting, Delivery or Interview."}
	ErrUnknownReference    = &Error{Field: FieldReference, Message: "Reference must be Manager, HR or Employee."}
)
