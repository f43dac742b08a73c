package utils

import (
	"errors"
	"regexp"
	"strconv"
)

// Allow alphanumeric, underscore, hyphen, dot
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ParseTrainID validates a train id from a path and converts it to its choice number.
func ParseTrainID(id string) (int, error) {
	if err := ValidateID(id); err != nil {
		return 0, err
	}

	choice, err := strconv.Atoi(id)
	if err != nil {
		return 0, errors.New("id must be a number")
	}

	return choice, nil
}
