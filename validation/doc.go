// Package validation provides struct validation on top of
// go-playground/validator, translating validation failures into the
// structured API errors the handlers return.
package validation
