package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/taskflow-api/config"
	"github.com/oksasatya/taskflow-api/internal/interface/middleware"
)

// app-level container to share constructed components across packages.
// Router can auto-wire modules from these singletons. Repositories are
// deliberately not held here; they are built per-module and injected.

var (
	cfg     *config.Config
	logger  *logrus.Logger
	limiter *middleware.TokenBucket
)

func SetConfig(c *config.Config)            { cfg = c }
func GetConfig() *config.Config             { return cfg }
func SetLogger(l *logrus.Logger)            { logger = l }
func GetLogger() *logrus.Logger             { return logger }
func SetLimiter(tb *middleware.TokenBucket) { limiter = tb }
func GetLimiter() *middleware.TokenBucket   { return limiter }
