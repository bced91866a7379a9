package service

import (
	"time"

	"github.com/noah-isme/boarding-admin-api/internal/models"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
)

const dateLayout = "2006-01-02"

func validatePeriod(period models.Period) error {
	if err := period.Validate(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	return nil
}

// parseDate reads a calendar date. Validation has already checked the layout, so a failure here
// still maps to a validation error rather than a fault.
func parseDate(raw, field string) (time.Time, error) {
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, field+" must be formatted as YYYY-MM-DD")
	}
	return date, nil
}

func periodOf(date time.Time) models.Period {
	return models.Period{Month: int(date.Month()), Year: date.Year()}
}
