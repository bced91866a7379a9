package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/boarding-admin-api/internal/models"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
)

// periodFromQuery reads the mandatory month and year query parameters. Range checks are left to
// the services so every entry point reports them the same way.
func periodFromQuery(c *gin.Context) (models.Period, error) {
	month, err := requiredInt(c, "month")
	if err != nil {
		return models.Period{}, err
	}
	year, err := requiredInt(c, "year")
	if err != nil {
		return models.Period{}, err
	}
	return models.Period{Month: month, Year: year}, nil
}

func requiredInt(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+" is required")
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, name+" must be an integer")
	}
	return value, nil
}

// optionalInt returns 0 when the parameter is absent.
func optionalInt(c *gin.Context, name string) (int, error) {
	if strings.TrimSpace(c.Query(name)) == "" {
		return 0, nil
	}
	return requiredInt(c, name)
}

func bindError(err error) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload")
}
