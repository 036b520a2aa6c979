package handler

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"broker/internal/evidence/entities"
	dErrors "broker/pkg/domain-errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// SearchRequest holds the query parameters of GET /search.
type SearchRequest struct {
	Name             string `query:"name" validate:"required,min=2,max=200"`
	MunicipalityCode string `query:"kommunenummer" validate:"omitempty,len=4,numeric"`
	Size             int    `query:"size" validate:"min=1,max=100"`
}

// ParseSearchRequest reads and validates the search query string.
func ParseSearchRequest(q url.Values) (*SearchRequest, error) {
	req := &SearchRequest{
		Name:             strings.TrimSpace(q.Get("name")),
		MunicipalityCode: strings.TrimSpace(q.Get("kommunenummer")),
		Size:             entities.DefaultPageSize,
	}
	if raw := strings.TrimSpace(q.Get("size")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeValidation, "size must be an integer")
		}
		req.Size = size
	}
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	return req, nil
}

// Query converts the request into a registry search.
func (r *SearchRequest) Query() entities.SearchQuery {
	return entities.SearchQuery{
		Name:             r.Name,
		MunicipalityCode: r.MunicipalityCode,
		Size:             r.Size,
	}
}

func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return dErrors.Wrap(err, dErrors.CodeValidation, "invalid request")
	}
	fe := verrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			msg = fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		} else {
			msg = fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		}
	case "max":
		if fe.Kind() == reflect.String {
			msg = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		} else {
			msg = fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
		}
	case "len", "numeric":
		msg = fmt.Sprintf("%s must be 4 digits", fe.Field())
	default:
		msg = fmt.Sprintf("%s is invalid", fe.Field())
	}
	return dErrors.New(dErrors.CodeValidation, msg)
}
