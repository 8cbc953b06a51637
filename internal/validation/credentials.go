package validation

import "strings"

// Credentials is the sign-in form
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignupForm is the registration form
type SignupForm struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

// NormalizeEmail trims and lowercases an address so it can be used as a unique key
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateCredentials checks the sign-in schema
func ValidateCredentials(c Credentials) (Credentials, error) {
	c.Email = NormalizeEmail(c.Email)
	if err := failure(check(c)); err != nil {
		return Credentials{}, err
	}
	return c, nil
}

// ValidateSignup checks the registration schema, including password confirmation
func ValidateSignup(f SignupForm) (Credentials, error) {
	f.Email = NormalizeEmail(f.Email)
	if err := failure(check(f)); err != nil {
		return Credentials{}, err
	}
	return Credentials{Email: f.Email, Password: f.Password}, nil
}
