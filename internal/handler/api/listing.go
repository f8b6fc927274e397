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

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary List listings
// @Description Newest first. average_rating is null until the listing has a review.
// @Tags listings
// @Produce json
// @Param location query string false "Case-insensitive location substring"
// @Param available query bool false "Only listings open for booking"
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.Page[resdto.ListingResponse]
// @Failure 400 {object} httperr.Response
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	filter := queries.ListingFilter{
		Location:      c.Query("location"),
		AvailableOnly: c.Query("available") == "true",
	}
	listings, next, err := h.q.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resdto.FromListingViews(listings), next))
}

// @Summary Get listing
// @Description Listing with its first page of reviews
// @Tags listings
// @Produce json
// @Param slug path string true "Listing slug"
// @Success 200 {object} resdto.ListingDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /listings/{slug} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	detail, err := h.q.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingDetailView(detail))
}

// @Summary Create listing
// @Description The caller becomes the owner
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 201 {object} resdto.ListingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	var req reqdto.CreateListingRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), middleware.GetActor(c), req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ListingCreatedResponse{ID: result.ID, Slug: result.Slug})
}

// @Summary Update listing
// @Description Partial update by the owner or an admin. Renaming changes the slug.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Listing slug"
// @Param request body reqdto.UpdateListingRequest true "Changed fields"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{slug} [patch]
func (h *ListingHandler) Update(c *gin.Context) {
	var req reqdto.UpdateListingRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Update(c.Request.Context(), middleware.GetActor(c), c.Param("slug"), req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	h.respondWithListing(c, result.Slug)
}

// @Summary Toggle availability
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Listing slug"
// @Param request body reqdto.SetAvailabilityRequest true "Availability"
// @Success 200 {object} resdto.ListingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{slug}/availability [put]
func (h *ListingHandler) SetAvailability(c *gin.Context) {
	var req reqdto.SetAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}
	slug := c.Param("slug")
	if err := h.cmds.SetAvailability(c.Request.Context(), middleware.GetActor(c), slug, *req.IsAvailable); err != nil {
		httperr.Handle(c, err)
		return
	}
	h.respondWithListing(c, slug)
}

// @Summary Delete listing
// @Description Only listings without bookings can be deleted
// @Tags listings
// @Security BearerAuth
// @Param slug path string true "Listing slug"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /listings/{slug} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), middleware.GetActor(c), c.Param("slug")); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ListingHandler) respondWithListing(c *gin.Context, slug string) {
	detail, err := h.q.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(&detail.ListingView))
}
