package middleware

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// VisitorContextKey holds the visitor id on the echo context.
	VisitorContextKey = "visitor_id"

	visitorSessionName = "gogoz-visitor"
	visitorKey         = "id"
)

// Visitor binds every browser to a stable visitor id kept in a cookie
// session. It must run after the echo-contrib session middleware. A new id
// is minted and saved when the cookie is missing or unreadable.
func Visitor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(visitorSessionName, c)
		if err != nil {
			// A cookie signed with an old secret still yields a fresh session.
			slog.Debug("Discarding unreadable visitor cookie", "error", err)
		}
		if sess == nil {
			return next(c)
		}

		id, _ := sess.Values[visitorKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[visitorKey] = id
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				FromContext(c.Request().Context()).Error("Failed to save visitor session", "error", err)
			}
		}

		c.Set(VisitorContextKey, id)
		return next(c)
	}
}

// VisitorID returns the visitor id set by Visitor, or "" when absent.
func VisitorID(c echo.Context) string {
	id, _ := c.Get(VisitorContextKey).(string)
	return id
}
