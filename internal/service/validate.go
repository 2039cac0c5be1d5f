package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Ограничения полей — как в API: длины в символах, цвет — hex.
var (
	colorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	urlRe   = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)
)

func requireName(field, value string, max int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrValidation, field, max)
	}
	return nil
}

func limitLen(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrValidation, field, max)
	}
	return nil
}

func validateColor(value string) error {
	if value == "" {
		return nil
	}
	if !colorRe.MatchString(value) {
		return fmt.Errorf("%w: color must be a hex value like #6366f1", ErrValidation)
	}
	return nil
}

func validateURL(value string) error {
	if value == "" {
		return fmt.Errorf("%w: url is required", ErrValidation)
	}
	if !urlRe.MatchString(strings.ToLower(value)) {
		return fmt.Errorf("%w: url is not a valid URL", ErrValidation)
	}
	return nil
}

// normalizeURL добавляет https://, если схема не указана.
func normalizeURL(value string) string {
	if value == "" {
		return value
	}
	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return value
	}
	return "https://" + value
}
