package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/robord1/macronutrient-tracker-api/apperrors"
)

// respondError is the single place errors become HTTP responses. Known
// taxonomy errors map to their status with a caller-safe message; anything
// else is logged server-side and answered with a generic 500.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Internal(err)
	}

	if appErr.Kind == apperrors.KindInternal {
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
	}

	c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
}
