package handlers

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// errorIs reports whether err wraps target; ledger errors arrive wrapped
// with per-item context from batch imports.
func errorIs(err, target error) bool {
	return stderrors.Is(err, target)
}

func errDateFormat(field string) error {
	return fmt.Errorf("invalid %s format, use YYYY-MM-DD", field)
}

func errInvalidField(field string) error {
	return fmt.Errorf("invalid %s", field)
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// parseDateRange reads startDate/endDate query params (YYYY-MM-DD). When
// absent the range defaults to the trailing defaultDays ending today.
func parseDateRange(c echo.Context, defaultDays int) (time.Time, time.Time, error) {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -defaultDays)

	if startStr := c.QueryParam("startDate"); startStr != "" {
		parsed, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return start, end, fmt.Errorf("invalid startDate format, use YYYY-MM-DD")
		}
		start = parsed
	}

	if endStr := c.QueryParam("endDate"); endStr != "" {
		parsed, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return start, end, fmt.Errorf("invalid endDate format, use YYYY-MM-DD")
		}
		end = parsed
	}

	if end.Before(start) {
		return start, end, fmt.Errorf("endDate must not be before startDate")
	}

	return start, end, nil
}
