package api

import (
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary List reviews
// @Description Reviews of a listing, newest first
// @Tags reviews
// @Produce json
// @Param slug path string true "Listing slug"
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.Page[resdto.ReviewResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{slug}/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	reviews, next, err := h.q.ListByListing(c.Request.Context(), c.Param("slug"), cursor, limit)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resdto.FromReviewViews(reviews), next))
}

// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Listing slug"
// @Param request body reqdto.ReviewRequest true "Review"
// @Success 201 {object} resdto.ReviewCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{slug}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateReview(c.Request.Context(), middleware.GetActor(c), c.Param("slug"), req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ReviewCreatedResponse{ID: id})
}

// @Summary Update review
// @Description Author or admin
// @Tags reviews
// @Accept json
// @Security BearerAuth
// @Param slug path string true "Listing slug"
// @Param id path string true "Review ID"
// @Param request body reqdto.ReviewRequest true "Review"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{slug}/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateReview(c.Request.Context(), middleware.GetActor(c), c.Param("slug"), id, req.ToInput()); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete review
// @Description Author or admin
// @Tags reviews
// @Security BearerAuth
// @Param slug path string true "Listing slug"
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{slug}/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteReview(c.Request.Context(), middleware.GetActor(c), c.Param("slug"), id); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
