package entities

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	FieldReasonRequired = "required"
	FieldReasonInvalid  = "invalid"
)

// FieldError is a single failed form field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrors is the result of validating a form; nil means valid.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, 2)
	if missing := v.Missing(); len(missing) > 0 {
		parts = append(parts, "missing fields: "+strings.Join(missing, ", "))
	}
	if invalid := v.Invalid(); len(invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// Missing returns the required fields that were left empty, in form order.
func (v ValidationErrors) Missing() []string {
	return v.fields(FieldReasonRequired)
}

// Invalid returns the fields that were filled with an unacceptable value.
func (v ValidationErrors) Invalid() []string {
	return v.fields(FieldReasonInvalid)
}

func (v ValidationErrors) HasMissing() bool {
	return len(v.Missing()) > 0
}

func (v ValidationErrors) fields(reason string) []string {
	out := make([]string, 0, len(v))
	for _, fe := range v {
		if fe.Reason == reason {
			out = append(out, fe.Field)
		}
	}
	return out
}

func (v ValidationErrors) has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// QuoteForm is the data entered on the quote screen.
type QuoteForm struct {
	Name        string  `field:"name" validate:"required"`
	Email       string  `field:"email" validate:"required"`
	Phone       string  `field:"phone"`
	ServiceType string  `field:"serviceType" validate:"omitempty,quote_service"`
	Description string  `field:"description" validate:"required"`
	Urgency     Urgency `field:"urgency" validate:"omitempty,urgency"`
}

// EmptyQuoteForm is the state the quote form returns to after a successful submission.
func EmptyQuoteForm() QuoteForm {
	return QuoteForm{Urgency: DefaultUrgency}
}

// Normalized trims every field and applies the default urgency.
func (f QuoteForm) Normalized() QuoteForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ServiceType = strings.TrimSpace(f.ServiceType)
	f.Description = strings.TrimSpace(f.Description)
	f.Urgency = Urgency(strings.ToLower(strings.TrimSpace(string(f.Urgency))))
	if f.Urgency == "" {
		f.Urgency = DefaultUrgency
	}
	return f
}

// Validate checks the normalized form. Whitespace-only values count as empty.
func (f QuoteForm) Validate() ValidationErrors {
	return validateStruct(f.Normalized())
}

// AppointmentForm is the selection made on the booking screen.
type AppointmentForm struct {
	Date    string `field:"date" validate:"required"`
	Time    string `field:"time" validate:"required,appointment_slot"`
	Service string `field:"service" validate:"required,appointment_service"`
}

func (f AppointmentForm) Normalized() AppointmentForm {
	f.Date = strings.TrimSpace(f.Date)
	f.Time = strings.TrimSpace(f.Time)
	f.Service = strings.TrimSpace(f.Service)
	return f
}

// Validate checks the selections; the date must fall in the booking window that starts the day after today.
func (f AppointmentForm) Validate(today time.Time) ValidationErrors {
	f = f.Normalized()
	errs := validateStruct(f)
	if f.Date != "" && !errs.has("date") && !isBookableDate(f.Date, today) {
		errs = append(errs, FieldError{Field: "date", Reason: FieldReasonInvalid})
	}
	return errs
}

func isBookableDate(date string, today time.Time) bool {
	for _, d := range BookableDates(today) {
		if d.Date == date {
			return true
		}
	}
	return false
}

// PaymentForm is the input of the payment screen.
type PaymentForm struct {
	Method      string `field:"method" validate:"required,payment_method"`
	Amount      string `field:"amount" validate:"required,money"`
	Description string `field:"description"`
}

func (f PaymentForm) Normalized() PaymentForm {
	f.Method = strings.ToLower(strings.TrimSpace(f.Method))
	f.Amount = strings.TrimPrefix(strings.TrimSpace(f.Amount), "$")
	f.Description = strings.TrimSpace(f.Description)
	return f
}

func (f PaymentForm) Validate() ValidationErrors {
	return validateStruct(f.Normalized())
}

var (
	formValidator = newFormValidator()
	moneyPattern  = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" && name != "-" {
			return name
		}
		return fld.Name
	})

	urgencies := make([]string, 0, len(UrgencyLevels))
	for _, u := range UrgencyLevels {
		urgencies = append(urgencies, string(u))
	}
	methods := make([]string, 0, len(PaymentMethods))
	for _, m := range PaymentMethods {
		methods = append(methods, m.ID)
	}

	mustRegister(v, "quote_service", oneOf(QuoteServiceTypes))
	mustRegister(v, "urgency", oneOf(urgencies))
	mustRegister(v, "appointment_slot", oneOf(AppointmentTimeSlots))
	mustRegister(v, "appointment_service", oneOf(AppointmentServices))
	mustRegister(v, "payment_method", oneOf(methods))
	mustRegister(v, "money", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !moneyPattern.MatchString(s) {
			return false
		}
		amount, err := strconv.ParseFloat(s, 64)
		return err == nil && amount > 0
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func oneOf(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, v := range values {
			if v == s {
				return true
			}
		}
		return false
	}
}

func validateStruct(s any) ValidationErrors {
	err := formValidator.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{{Field: "form", Reason: FieldReasonInvalid}}
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		reason := FieldReasonInvalid
		if fe.Tag() == "required" {
			reason = FieldReasonRequired
		}
		out = append(out, FieldError{Field: fe.Field(), Reason: reason})
	}
	return out
}
