package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"tracker_orders/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-Id"

	reqBodyLimit = 8 * 1024
	redacted     = "***redacted***"
)

// Keys whose values never reach the logs: customer contact data, payment
// references and secrets.
var sensitiveKeys = map[string]struct{}{
	"contact":       {},
	"email":         {},
	"address":       {},
	"street":        {},
	"vrhandle":      {},
	"password":      {},
	"authorization": {},
	"token":         {},
	"secret":        {},

	"transactionid":        {},
	"paypalorderid":        {},
	"mercadopagopaymentid": {},
}

// RequestLogger tags every request with a request id, stores a request-scoped
// entry for handlers (see logging.From) and logs one line per request.
// JSON request bodies are logged with customer data redacted.
func RequestLogger(base *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
			c.Request.Header.Set(RequestIDHeader, reqID)
		}
		c.Header(RequestIDHeader, reqID)

		l := base.WithFields(logrus.Fields{
			"req_id": reqID,
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"remote": c.ClientIP(),
		})
		logging.With(c, l)

		var reqBody string
		if strings.Contains(c.GetHeader("Content-Type"), "application/json") && c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			_ = c.Request.Body.Close()
			if err == nil {
				c.Request.Body = io.NopCloser(bytes.NewReader(body))
				if len(body) > reqBodyLimit {
					reqBody = string(redactJSON(body[:reqBodyLimit])) + "...truncated..."
				} else {
					reqBody = string(redactJSON(body))
				}
			}
		}

		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"status":     status,
			"dur_ms":     time.Since(start).Milliseconds(),
			"resp_bytes": c.Writer.Size(),
		}
		if reqBody != "" {
			fields["req_body"] = reqBody
		}
		if len(c.Errors) > 0 {
			fields["error"] = c.Errors.String()
		}

		e := l.WithFields(fields)
		switch {
		case status >= http.StatusInternalServerError:
			e.Error("http_request")
		case status >= http.StatusBadRequest:
			e.Warn("http_request")
		default:
			e.Info("http_request")
		}
	}
}

// redactJSON masks sensitive values at any depth. Input that is not JSON is
// replaced entirely since it cannot be inspected.
func redactJSON(raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return []byte(redacted)
	}
	out, err := json.Marshal(scrub(v))
	if err != nil {
		return []byte(redacted)
	}
	return out
}

func scrub(x any) any {
	switch v := x.(type) {
	case map[string]any:
		for k, val := range v {
			if _, ok := sensitiveKeys[strings.ToLower(k)]; ok {
				v[k] = redacted
				continue
			}
			v[k] = scrub(val)
		}
		return v
	case []any:
		for i := range v {
			v[i] = scrub(v[i])
		}
		return v
	default:
		return v
	}
}
