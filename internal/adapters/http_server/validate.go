package httpserver

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var errInvalidHotelID = errors.New("hotelId must be a non-negative integer")

// parseHotelID accepts decimal digits only. Zero passes; no hotel has it, so lookup reports not found.
func parseHotelID(raw string) (int64, error) {
	if err := validate.Var(raw, "required,number"); err != nil {
		return 0, errInvalidHotelID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errInvalidHotelID
	}
	return id, nil
}
