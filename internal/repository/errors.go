// Package repository defines error values that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios, e.g. translating
// ErrAlreadySelected into an HTTP 403 response.
package repository

import (
	"errors"
	"strings"
)

// ErrUserNotFound is returned when no user row matches the given email.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when an insert collides with the unique key
// on users.email.
var ErrEmailExists = errors.New("email already exists")

// ErrAlreadySelected is returned when an insert collides with the unique key
// on selected_classes.class_id, meaning the class is already in someone's
// selection.
var ErrAlreadySelected = errors.New("class already selected")

// isDuplicateEntryError reports whether err is a MySQL duplicate-key error
// (error number 1062).
func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "1062")
}
