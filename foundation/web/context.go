package web

import (
	"context"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Context struct {
	*gin.Context
	Ctx context.Context

	paramErr error
	queryErr error
}

func NewContext(c *gin.Context) *Context {
	return &Context{Context: c, Ctx: c.Request.Context()}
}

// BindFunc decodes the JSON body into obj and checks that every field named
// in requiredFields is present. Field names refer to the Go struct fields;
// a name may also be given as a single comma separated string.
func (c *Context) BindFunc(obj interface{}, requiredFields ...string) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return NewRequestError(errors.Wrap(err, "parsing request body"), http.StatusBadRequest)
	}

	var fields []string
	for _, f := range requiredFields {
		fields = append(fields, strings.Split(f, ",")...)
	}

	return RequireFields(obj, fields...)
}

// RequireFields fails with a 400 error when any named struct field is unset:
// nil for pointers and slices, the empty string for strings.
func RequireFields(obj interface{}, fields ...string) error {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	for _, name := range fields {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		field := v.FieldByName(name)
		if !field.IsValid() {
			return NewRequestError(errors.Errorf("unknown required field %q", name), http.StatusInternalServerError)
		}

		missing := false
		switch field.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			missing = field.IsNil()
			if !missing && field.Kind() == reflect.Slice {
				missing = field.Len() == 0
			}
		case reflect.String:
			missing = strings.TrimSpace(field.String()) == ""
		default:
			missing = field.IsZero()
		}
		if missing {
			return NewRequestError(errors.Errorf("field %s is required", fieldJSONName(v.Type(), name)), http.StatusBadRequest)
		}
	}

	return nil
}

func fieldJSONName(t reflect.Type, name string) string {
	if f, ok := t.FieldByName(name); ok {
		tag := f.Tag.Get("json")
		if tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}
	return name
}

// GetParam reads a path parameter converted to the given kind. Conversion
// failures are collected and surfaced by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(value)
		if err != nil {
			c.paramErr = NewRequestError(errors.Errorf("parsing path param %q", name), http.StatusBadRequest)
			return 0
		}
		return v
	case reflect.String:
		if value == "" {
			c.paramErr = NewRequestError(errors.Errorf("path param %q is required", name), http.StatusBadRequest)
		}
		return value
	default:
		c.paramErr = NewRequestError(errors.Errorf("unsupported param kind for %q", name), http.StatusInternalServerError)
		return nil
	}
}

func (c *Context) ValidParam() error {
	return c.paramErr
}

// GetQueryFunc reads an optional query parameter, returning a typed pointer
// which is nil when the parameter is absent.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok {
			return (*int)(nil)
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			c.queryErr = NewRequestError(errors.Errorf("parsing query param %q", name), http.StatusBadRequest)
			return (*int)(nil)
		}
		return &v
	case reflect.String:
		if !ok {
			return (*string)(nil)
		}
		return &value
	case reflect.Bool:
		if !ok {
			return (*bool)(nil)
		}
		v, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErr = NewRequestError(errors.Errorf("parsing query param %q", name), http.StatusBadRequest)
			return (*bool)(nil)
		}
		return &v
	default:
		return nil
	}
}

func (c *Context) ValidQuery() error {
	return c.queryErr
}

func (c *Context) Respond(data map[string]interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError writes the unified error envelope. Internal failures are
// logged with their cause and answered with a generic message.
func (c *Context) RespondError(err error) error {
	status := http.StatusInternalServerError
	message := err.Error()

	if webErr, ok := IsRequestError(err); ok && webErr.Status != 0 {
		status = webErr.Status
	}

	if status >= http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")
		message = "server error"
	}

	c.JSON(status, map[string]interface{}{
		"success": false,
		"message": message,
	})

	return nil
}
