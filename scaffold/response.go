package scaffold

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorMessage tags a warning envelope with the operation that failed.
type ErrorMessage string

const (
	GetDataError    ErrorMessage = "GET_DATA_ERROR"
	CreateDataError ErrorMessage = "CREATE_DATA_ERROR"
	UpdateDataError ErrorMessage = "UPDATE_DATA_ERROR"
	DeleteDataError ErrorMessage = "DELETE_DATA_ERROR"
	NotFoundTag     ErrorMessage = "NOT_FOUND_ERROR"
	InternalError   ErrorMessage = "INTERNAL_SERVER_ERROR"
)

type resultKind int

const (
	successResult resultKind = iota
	warningResult
)

// Result is the outcome of a generated handler: either Success(payload) or
// Warning(tag, detail). It is rendered once, by Render.
type Result struct {
	kind    resultKind
	status  int
	payload any
	tag     ErrorMessage
	detail  string
}

func Success(status int, payload any) Result {
	return Result{kind: successResult, status: status, payload: payload}
}

func Warning(tag ErrorMessage, status int, detail string) Result {
	return Result{kind: warningResult, status: status, tag: tag, detail: detail}
}

// Fail converts an error into a warning tagged with the failing operation.
// NotFoundError becomes a 404 NOT_FOUND warning and bad input a 400; anything else is a 500.
func Fail(tag ErrorMessage, err error) Result {
	switch {
	case IsNotFound(err):
		return Warning(NotFoundTag, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrBadRequest):
		return Warning(tag, http.StatusBadRequest, err.Error())
	default:
		return Warning(tag, http.StatusInternalServerError, err.Error())
	}
}

// Found renders a lookup: errors fail with tag, a nil entity is a NOT_FOUND warning
// carrying missing, anything else succeeds with 200.
func Found[T any](entity *T, err error, tag ErrorMessage, missing string) Result {
	if err != nil {
		return Fail(tag, err)
	}
	if entity == nil {
		return Warning(NotFoundTag, http.StatusNotFound, missing)
	}
	return Success(http.StatusOK, entity)
}

func (r Result) IsSuccess() bool { return r.kind == successResult }

func (r Result) Status() int { return r.status }

func (r Result) Payload() any { return r.payload }

func (r Result) Tag() ErrorMessage { return r.tag }

func (r Result) Detail() string { return r.detail }

// Envelope is the JSON body written for every Result.
type Envelope struct {
	Status string       `json:"status"`
	Method string       `json:"method,omitempty"`
	Code   ErrorMessage `json:"code,omitempty"`
	Data   any          `json:"data,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// Render writes r as an Envelope.
func Render(c *gin.Context, r Result) {
	if r.IsSuccess() {
		c.JSON(r.status, Envelope{
			Status: "success",
			Method: c.Request.Method,
			Data:   r.payload,
		})
		return
	}

	c.JSON(r.status, Envelope{
		Status: "warning",
		Code:   r.tag,
		Error:  r.detail,
	})
}
