package api

import (
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Register user
// @Description Create a guest or host account
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterUserRequest true "Registration"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.RegisterResponse{ID: id})
}

// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.Page[resdto.UserResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	users, next, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resdto.FromUserViews(users), next))
}

// @Summary Get user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	user, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(user))
}
