package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindStrict decodes the JSON body into v, rejecting unknown keys, then
// runs struct validation. The payload contracts are closed sets, so a
// misspelled or extra field is a 400, not silently dropped.
func bindStrict(c echo.Context, v interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid request payload: %v", err))
	}
	return c.Validate(v)
}
