package controllers

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mohsinshafique7/clays-notes-backend/utils"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z\s]*$`)

// RegisterValidations installs the custom binding rules the request DTOs
// use. Call once before routes are set up.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("dateformat", validDate)
	_ = v.RegisterValidation("notfuture", notFuture)
	_ = v.RegisterValidation("accountname", validAccountName)
}

// validDate accepts strict YYYY-MM-DD values only.
func validDate(fl validator.FieldLevel) bool {
	_, err := utils.ParseDate(fl.Field().String())
	return err == nil
}

// notFuture rejects dates after today. Unparsable values pass here so the
// dateformat rule reports the failure once.
func notFuture(fl validator.FieldLevel) bool {
	date, err := utils.ParseDate(fl.Field().String())
	if err != nil {
		return true
	}
	return !utils.IsFuture(date)
}

// validAccountName wants letters and spaces, not blank.
func validAccountName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return namePattern.MatchString(name) && strings.TrimSpace(name) != ""
}
