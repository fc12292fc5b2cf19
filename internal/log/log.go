package log

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "ts",
			logrus.FieldKeyMsg:  "action",
		},
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetOutput redirects every log line to w.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// SetLevel accepts logrus level names; unknown names keep the current level.
func SetLevel(level string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		std.SetLevel(lvl)
	}
}

// Logger exposes the underlying logger for middleware that needs an io.Writer.
func Logger() *logrus.Logger { return std }

func write(level logrus.Level, kind string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	e := std.WithField("kind", kind)
	if c != nil {
		e = e.WithFields(logrus.Fields{
			"ip":     c.IP(),
			"method": c.Method(),
			"path":   c.Path(),
		})
		if st := c.Response().StatusCode(); st != 0 {
			e = e.WithField("status", st)
		}
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e = e.WithField("req_id", rid)
		}
		if sid, ok := c.Locals("sid").(string); ok && sid != "" {
			e = e.WithField("sid", sid)
		}
	}
	if len(fields) > 0 {
		e = e.WithField("fields", fields)
	}
	if err != nil {
		e = e.WithField("err", err.Error())
	}
	e.Log(level, action)
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(logrus.InfoLevel, "info", c, action, nil, fields)
}
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(logrus.InfoLevel, "audit", c, action, nil, fields)
}
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(logrus.WarnLevel, "security", c, action, nil, fields)
}
func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(logrus.ErrorLevel, "error", c, action, err, fields)
}

// Event logs outside a request (startup, background state changes).
func Event(action string, fields map[string]any) {
	write(logrus.InfoLevel, "info", nil, action, nil, fields)
}

// Warn logs a recovered failure outside a request.
func Warn(action string, err error, fields map[string]any) {
	write(logrus.WarnLevel, "warn", nil, action, err, fields)
}
