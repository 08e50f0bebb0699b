package api

import (
	"net/http"

	reqdto "hotel-fastbill/internal/handler/dto/request"
	resdto "hotel-fastbill/internal/handler/dto/response"
	"hotel-fastbill/internal/handler/httperr"
	"hotel-fastbill/internal/usecase/commands"
	"hotel-fastbill/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	cmds commands.SettingsCommands
	q    queries.SettingsQueries
}

func NewSettingsHandler(cmds commands.SettingsCommands, q queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, q: q}
}

// @Summary Get settings
// @Description Get the application settings
// @Tags settings
// @Produce json
// @Success 200 {object} resdto.SettingsResponse
// @Failure 500 {object} map[string]string
// @Router /api/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.q.Get(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettings(s))
}

// @Summary Update settings
// @Description Merge the given fields into the stored settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateSettingsRequest true "Settings patch"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	s, err := h.cmds.UpdateSettings(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettings(s))
}
