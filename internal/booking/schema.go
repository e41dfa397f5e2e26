package booking

import (
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Wizard steps. Each step validates a disjoint group of draft fields; the
// review step re-displays already-validated data and checks nothing new.
const (
	StepService  = 1
	StepDateTime = 2
	StepDetails  = 3
	StepReview   = 4
	TotalSteps   = 4
)

// FieldErrors maps a form field to a human-readable message.
type FieldErrors map[string]string

var validate = validator.New()

// E.164-style number with optional leading plus. The pattern alone does not
// enforce the 10 character minimum; length is checked independently.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// StepFields lists the draft fields validated at the given wizard step.
func StepFields(step int) []string {
	switch step {
	case StepService:
		return []string{"serviceId"}
	case StepDateTime:
		return []string{"date", "timeSlot"}
	case StepDetails:
		return []string{"name", "email", "phone"}
	}
	return nil
}

// ValidateStep checks only the fields belonging to the given step, leaving
// every other field's error state untouched. It returns nil when the step
// passes, and never panics on malformed input.
func ValidateStep(d Draft, step int) FieldErrors {
	errs := FieldErrors{}

	switch step {
	case StepService:
		if d.ServiceID == "" {
			errs["serviceId"] = "Please select a service"
		}
	case StepDateTime:
		if d.Date.IsZero() {
			errs["date"] = "Please select a date"
		}
		if d.TimeSlot == "" {
			errs["timeSlot"] = "Please select a time"
		}
	case StepDetails:
		if utf8.RuneCountInString(d.Name) < 2 {
			errs["name"] = "Name must be at least 2 characters"
		}
		if err := validate.Var(d.Email, "required,email"); err != nil {
			errs["email"] = "Invalid email address"
		}
		if msg := phoneMessage(d.Phone); msg != "" {
			errs["phone"] = msg
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate runs every step's checks, for the pre-submit full-schema pass.
func Validate(d Draft) FieldErrors {
	errs := FieldErrors{}
	for step := StepService; step <= StepDetails; step++ {
		for field, msg := range ValidateStep(d, step) {
			errs[field] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func phoneMessage(phone string) string {
	if !phonePattern.MatchString(phone) {
		return "Invalid phone number format"
	}
	if len(phone) < 10 {
		return "Phone number must be at least 10 digits"
	}
	if len(phone) > 15 {
		return "Phone number is too long"
	}
	return ""
}
