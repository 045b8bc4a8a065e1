package calendarerrors

import (
	"net/http"

	"holerite/internal/shared/apperror"
)

var ErrInvalidPeriod = apperror.New(
	apperror.CodeInvalidInput,
	"invalid period format, expected YYYY-MM",
	http.StatusBadRequest,
)
