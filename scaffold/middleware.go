package scaffold

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Handler is the signature of generated controller methods.
type Handler func(c *gin.Context) Result

// Async adapts a Handler to gin. A panic inside the handler is forwarded to the
// error chain with c.Error instead of tearing down the request; ErrorHandler renders it.
func Async(h Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				_ = c.Error(err)
				c.Abort()
			}
		}()

		Render(c, h(c))
	}
}

// ErrorHandler renders errors forwarded by Async as a warning envelope
// when nothing has been written yet.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		Render(c, Warning(InternalError, http.StatusInternalServerError, c.Errors.Last().Error()))
	}
}

// NewEngine returns a gin engine ready to mount generated routes. With no origins
// every origin is allowed.
func NewEngine(origins ...string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(origins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	engine.Use(cors.New(corsConfig), ErrorHandler())

	return engine
}

// ParamID parses the ":id" path parameter.
func ParamID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", ErrBadRequest, raw)
	}
	return id, nil
}

// Bind decodes the JSON request body into dest.
func Bind(c *gin.Context, dest any) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

// BindFields decodes the JSON body into dest like Bind and also returns the
// top-level keys the body carried, sorted. Updates write exactly those columns.
func BindFields(c *gin.Context, dest any) ([]string, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if err := binding.JSON.BindBody(body, dest); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return slices.Sorted(maps.Keys(present)), nil
}
