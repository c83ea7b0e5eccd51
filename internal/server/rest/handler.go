package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/userregistry/internal/common"
	"github.com/dmitrijs2005/userregistry/internal/server/models"
	"github.com/dmitrijs2005/userregistry/internal/server/validation"
	"github.com/gin-gonic/gin"
)

const (
	msgSaved          = "Data Saved Successfully"
	msgBadBody        = "Invalid request body"
	msgEmailExists    = "Email already exists!"
	msgMobileExists   = "Mobile already exists!"
	msgInternalServer = "Internal server error"
)

// save handles POST /save. The body may be JSON or form-encoded.
func (s *HTTPServer) save(c *gin.Context) {
	var form validation.Form
	// An empty body binds to an empty form so the required checks report it.
	if err := c.ShouldBind(&form); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgBadBody})
		return
	}

	user, err := s.users.Save(c.Request.Context(), form)
	if err != nil {
		status, msg := s.saveError(c, err)
		c.JSON(status, gin.H{"success": false, "message": msg})
		return
	}

	logger(c).Info(c.Request.Context(), "User saved", "id", user.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msgSaved})
}

func (s *HTTPServer) saveError(c *gin.Context, err error) (int, string) {
	var fe *validation.FieldError
	switch {
	case errors.As(err, &fe):
		return http.StatusBadRequest, fe.Message
	case errors.Is(err, common.ErrorDuplicateEmail):
		return http.StatusBadRequest, msgEmailExists
	case errors.Is(err, common.ErrorDuplicateMobile):
		return http.StatusBadRequest, msgMobileExists
	case errors.Is(err, common.ErrorInternal):
		logger(c).Error(c.Request.Context(), "save failed", "error", err)
		return http.StatusInternalServerError, msgInternalServer
	default:
		logger(c).Error(c.Request.Context(), "save failed with unclassified error", "error", err)
		return http.StatusInternalServerError, msgInternalServer
	}
}

// list handles GET /get.
func (s *HTTPServer) list(c *gin.Context) {
	list, err := s.users.List(c.Request.Context())
	if err != nil {
		logger(c).Error(c.Request.Context(), "list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgInternalServer})
		return
	}
	if list == nil {
		list = []*models.User{}
	}
	c.JSON(http.StatusOK, list)
}
