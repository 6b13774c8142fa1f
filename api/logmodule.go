package api

import (
	"net/http/httputil"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DumpRequest is a middleware to dump incoming http requests if the
// trace mode is enabled.
func (s *Server) DumpRequest(c *gin.Context) {
	if s.traceMode {
		dump, err := httputil.DumpRequest(c.Request, true)
		if err != nil {
			log.WithFields(logrus.Fields{
				"prefix": "gin",
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).WithError(err).Error("fail to dump request")
		}

		log.WithFields(logrus.Fields{
			"prefix": "gin",
			"req":    string(dump),
		}).Debug("incoming request")
	}

	c.Next()
}
