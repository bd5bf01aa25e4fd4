// Package httpx holds the gin helpers shared by the entity handlers:
// query-string parsing and error responses.
package httpx

import (
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/gin-gonic/gin"
)

const (
	BrandParam      = "brandId"
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// BrandID returns the brand path parameter.
func BrandID(c *gin.Context) string {
	return c.Param(BrandParam)
}

// RequestID returns the id assigned by the request-id middleware, if any.
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// lookup returns the first of names present in the query string. Several
// names let snake_case and camelCase spellings of one filter coexist.
func lookup(c *gin.Context, names []string) (string, string, bool) {
	for _, n := range names {
		if v, ok := c.GetQuery(n); ok {
			return n, v, true
		}
	}
	return "", "", false
}

// QueryString returns the value of the first of names present. An empty
// string means the filter was not supplied.
func QueryString(c *gin.Context, names ...string) string {
	_, v, _ := lookup(c, names)
	return v
}

// ParseBool accepts true/1/false/0 in any letter case.
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

// QueryBool returns nil when none of names is supplied.
func QueryBool(c *gin.Context, names ...string) (*bool, error) {
	name, raw, ok := lookup(c, names)
	if !ok || raw == "" {
		return nil, nil
	}
	b, ok := ParseBool(raw)
	if !ok {
		return nil, apperror.NewCallerInput(name, "must be one of true, false, 1, 0")
	}
	return &b, nil
}

// QueryInt64 returns nil when none of names is supplied.
func QueryInt64(c *gin.Context, names ...string) (*int64, error) {
	name, raw, ok := lookup(c, names)
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, apperror.NewCallerInput(name, "must be an integer")
	}
	return &n, nil
}
