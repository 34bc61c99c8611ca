package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ResizeRequest carries the browser's current inner width.
type ResizeRequest struct {
	Width int `form:"width" validate:"required,min=1,max=100000"`
}

// SelectRequest identifies the navigation entry that was clicked. The
// anchor is optional; when present it must match the entry at Index.
type SelectRequest struct {
	Index  *int   `form:"index" validate:"required,min=0"`
	Anchor string `form:"anchor" validate:"omitempty,startswith=#"`
}

// GoToRequest jumps the carousel to an index. Upper bound checks belong to
// the rotator, which answers with an out-of-range error.
type GoToRequest struct {
	Index *int `form:"index" validate:"required,min=0"`
}
