package app

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-cpio/pkg/services"
)

// Context holds application-wide configuration and state
type Context struct {
	context.Context

	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool
	HumanSizes   bool

	// Decoding behaviour
	Strict     bool
	MaxEntries int

	// DefaultTimeout bounds the work done for one archive; 0 disables it
	DefaultTimeout time.Duration

	// Out receives formatted results; Log writes diagnostics to stderr
	Out io.Writer
	Log *logrus.Logger

	Archives services.ArchiveService
}

// NewContext creates a new application context
func NewContext() *Context {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &Context{
		Context:        context.Background(),
		OutputFormat:   "table",
		HumanSizes:     true,
		DefaultTimeout: 30 * time.Second,
		Out:            os.Stdout,
		Log:            log,
		Archives:       services.NewArchiveService(services.Config{}),
	}
}

// Configure applies verbosity to the logger and rebuilds the archive
// service with the current entry limit
func (c *Context) Configure() {
	switch {
	case c.Quiet:
		c.Log.SetLevel(logrus.ErrorLevel)
	case c.Verbose:
		c.Log.SetLevel(logrus.DebugLevel)
	default:
		c.Log.SetLevel(logrus.InfoLevel)
	}

	c.Archives = services.NewArchiveService(services.Config{MaxEntries: c.MaxEntries})
}

// WithTimeout creates a context with timeout. A timeout of zero or less
// only makes the context cancellable.
func (c *Context) WithTimeout(timeout time.Duration) (*Context, context.CancelFunc) {
	if timeout <= 0 {
		return c.WithCancel()
	}

	ctx, cancel := context.WithTimeout(c.Context, timeout)
	newCtx := *c
	newCtx.Context = ctx
	return &newCtx, cancel
}

// WithCancel creates a cancellable context
func (c *Context) WithCancel() (*Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(c.Context)
	newCtx := *c
	newCtx.Context = ctx
	return &newCtx, cancel
}

// Interrupted wraps err in a TIMEOUT error when c has ended. It returns nil
// while c is still live.
func (c *Context) Interrupted(operation string, err error) error {
	if c.Err() == nil {
		return nil
	}
	return NewError(ErrCodeTimeout, operation+" interrupted", err)
}

// Logger returns a log entry scoped to one archive
func (c *Context) Logger(archivePath string) *logrus.Entry {
	return c.Log.WithField("archive", archivePath)
}
