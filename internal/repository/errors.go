// Package repository provides access to staff accounts.  Sentinel
// errors let the auth handler distinguish failure cases without
// inspecting driver-specific errors.
package repository

import "errors"

// ErrStaffNotFound is returned when no staff account matches the
// requested username.  Handlers translate it into HTTP 404.
var ErrStaffNotFound = errors.New("staff not found")

// ErrStaffExists is returned by Create when the username is already
// taken, mirroring the unique constraint on the staff table.
var ErrStaffExists = errors.New("staff already exists")
