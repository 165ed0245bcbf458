package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) IsValid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

func (v *Validator) CheckNotBlank(value, key, message string) {
	v.Check(strings.TrimSpace(value) != "", key, message)
}

// CheckMaxLength counts characters, not bytes.
func (v *Validator) CheckMaxLength(value string, n int, key, message string) {
	v.Check(utf8.RuneCountInString(value) <= n, key, message)
}

func (v *Validator) CheckMatch(value string, rx *regexp.Regexp, key, message string) {
	v.Check(rx.MatchString(value), key, message)
}
