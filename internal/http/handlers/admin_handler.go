package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAssignableAdmins godoc
// @ID          getAssignableAdmins
// @Summary     List assignable admins
// @Description Returns the members of the configured admin group in the identity directory.
// @Tags        Admin
// @Produce     json
//
// @Success     200 {array}  services.Admin
// @Failure     502 {object} handlers.ErrorResponse "Identity directory unavailable"
// @Router      /admins [get]
func (h *Handlers) GetAssignableAdmins(c *gin.Context) {
	admins, err := h.adminSvc.AssignableAdmins(c.Request.Context())
	if err != nil {
		fail(c, http.StatusBadGateway, ErrCodeAdminsFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, admins)
}

// GetEnvironment godoc
// @ID          getEnvironment
// @Summary     Deployment environment details
// @Description Returns the configured environment name and the serving host.
// @Tags        Admin
// @Produce     json
//
// @Success     200 {object} services.EnvironmentInfo
// @Router      /environment [get]
func (h *Handlers) GetEnvironment(c *gin.Context) {
	ok(c, http.StatusOK, h.envSvc.Details())
}
