package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const ginKey = "logger"

var (
	once sync.Once
	base = logrus.New()
)

// Options configures the process-wide logger.
type Options struct {
	Service string
	Level   string
	File    string
}

// Init configures the global logger exactly once. Entries created with For
// before Init share the same *logrus.Logger and pick up the configuration.
func Init(opts Options) *logrus.Logger {
	once.Do(func() {
		var out io.Writer = os.Stdout
		if opts.File != "" {
			_ = os.MkdirAll(filepath.Dir(opts.File), 0o755)
			rot := &lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    50, // MB
				MaxBackups: 3,
				MaxAge:     7, // days
			}
			out = io.MultiWriter(os.Stdout, rot)
		}
		base.SetOutput(out)
		base.SetFormatter(&logrus.JSONFormatter{})

		level, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
		if err != nil {
			level = logrus.InfoLevel
			if opts.Level != "" {
				base.Warnf("invalid log level %q, using %s", opts.Level, level)
			}
		}
		base.SetLevel(level)
		if opts.Service != "" {
			base.AddHook(serviceHook(opts.Service))
		}
	})
	return base
}

func Base() *logrus.Logger {
	return base
}

// For returns an entry tagged with the domain and layer, e.g. For("order", "usecase").
func For(domain, layer string) *logrus.Entry {
	return base.WithFields(logrus.Fields{"domain": domain, "layer": layer})
}

// With stores a request-scoped entry in the gin context.
func With(c *gin.Context, l *logrus.Entry) {
	c.Set(ginKey, l)
}

// From returns the request-scoped entry, or fallback when none was stored.
func From(c *gin.Context, fallback *logrus.Entry) *logrus.Entry {
	if v, ok := c.Get(ginKey); ok {
		if l, ok := v.(*logrus.Entry); ok && l != nil {
			return l.WithFields(fallback.Data)
		}
	}
	return fallback
}

type serviceHook string

func (h serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h serviceHook) Fire(e *logrus.Entry) error {
	if _, ok := e.Data["service"]; !ok {
		e.Data["service"] = string(h)
	}
	return nil
}
