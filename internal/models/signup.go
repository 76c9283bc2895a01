package models

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// SignupRequest carries the raw signup form. dateOfBirth arrives as the form's
// YYYY-MM-DD string and is parsed during validation.
type SignupRequest struct {
	Name            string `json:"name" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	NID             string `json:"nid" validate:"required,bdnid"`
	Phone           string `json:"phone" validate:"required,bdphone"`
	DateOfBirth     string `json:"dateOfBirth" validate:"required,datetime=2006-01-02,adult"`
	Gender          string `json:"gender" validate:"required,oneof=male female other"`
	Division        string `json:"division" validate:"required,oneof=Dhaka Chittagong Rajshahi Khulna Barisal Sylhet Rangpur Mymensingh"`
	District        string `json:"district" validate:"required"`
	Address         string `json:"address" validate:"required,min=5"`
	Password        string `json:"password" validate:"required,min=8,strongpw"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

var (
	nidPattern     = regexp.MustCompile(`^(\d{10}|\d{17})$`)
	bdPhonePattern = regexp.MustCompile(`^(\+8801|01)[0-9]{9}$`)

	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasDigit   = regexp.MustCompile(`\d`)
	hasSpecial = regexp.MustCompile(`[!@#$%^&*]`)
)

func init() {
	Validate.RegisterValidation("bdnid", func(fl validator.FieldLevel) bool {
		return nidPattern.MatchString(fl.Field().String())
	})
	Validate.RegisterValidation("bdphone", func(fl validator.FieldLevel) bool {
		return bdPhonePattern.MatchString(fl.Field().String())
	})
	Validate.RegisterValidation("strongpw", func(fl validator.FieldLevel) bool {
		pw := fl.Field().String()
		return hasLower.MatchString(pw) && hasUpper.MatchString(pw) &&
			hasDigit.MatchString(pw) && hasSpecial.MatchString(pw)
	})
	// Age is a bare year subtraction. Someone whose 18th birthday falls later
	// this year still passes once the year has turned.
	Validate.RegisterValidation("adult", func(fl validator.FieldLevel) bool {
		dob, err := time.Parse("2006-01-02", fl.Field().String())
		if err != nil {
			return false
		}
		return time.Now().Year()-dob.Year() >= 18
	})
}

// signupMessages maps field+rule onto the message the client shows next to the
// field. The strings are part of the frontend contract, keep them stable.
var signupMessages = map[string]map[string]string{
	"name": {
		"required": "Name is required",
		"min":      "Name must be at least 3 characters",
	},
	"email": {
		"required": "Email is required",
		"email":    "Please provide a valid email",
	},
	"nid": {
		"required": "National ID is required",
		"bdnid":    "NID must be either 10 or 17 digits",
	},
	"phone": {
		"required": "Phone number is required",
		"bdphone":  "Please provide a valid Bangladesh phone number",
	},
	"dateOfBirth": {
		"required": "Date of birth is required",
		"datetime": "Please provide a valid date",
		"adult":    "You must be at least 18 years old to register",
	},
	"gender": {
		"required": "Gender is required",
		"oneof":    "Please select a valid gender option",
	},
	"division": {
		"required": "Division is required",
		"oneof":    "Please select a valid division",
	},
	"district": {
		"required": "District is required",
	},
	"address": {
		"required": "Address is required",
		"min":      "Address is too short",
	},
	"password": {
		"required": "Password is required",
		"min":      "Password must be at least 8 characters",
		"strongpw": "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character",
	},
	"confirmPassword": {
		"required": "Please confirm your password",
		"eqfield":  "Passwords do not match",
	},
}

// jsonFieldNames translates struct field names in validator errors back to the
// wire names the client keys its error display on.
var jsonFieldNames = map[string]string{
	"Name":            "name",
	"Email":           "email",
	"NID":             "nid",
	"Phone":           "phone",
	"DateOfBirth":     "dateOfBirth",
	"Gender":          "gender",
	"Division":        "division",
	"District":        "district",
	"Address":         "address",
	"Password":        "password",
	"ConfirmPassword": "confirmPassword",
}

// ValidateSignup runs the declarative rule set and aggregates failures into a
// field→message map. An empty map means the request passed the gate.
func (r *SignupRequest) ValidateSignup() map[string]string {
	fieldErrors := map[string]string{}

	err := Validate.Struct(r)
	if err == nil {
		return fieldErrors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["request"] = "Invalid signup data"
		return fieldErrors
	}

	for _, fe := range validationErrors {
		field := jsonFieldNames[fe.StructField()]
		if field == "" {
			field = fe.StructField()
		}
		if msg, found := signupMessages[field][fe.Tag()]; found {
			fieldErrors[field] = msg
		} else {
			fieldErrors[field] = "Invalid value"
		}
	}

	return fieldErrors
}

// ParsedDateOfBirth returns the date the gate already proved parseable.
func (r *SignupRequest) ParsedDateOfBirth() time.Time {
	dob, _ := time.Parse("2006-01-02", r.DateOfBirth)
	return dob
}
