//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"travel-booking/internal/domain/access"
	"travel-booking/internal/domain/review"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/api"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/common/testutil"
	commandsmock "travel-booking/tests/mock/commands"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	actor        access.Actor
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.actor = access.NewActor(uuid.New(), user.RoleGuest)

	auth := fakeAuth(s.actor.ID, s.actor.Role)
	s.router.GET("/listings/:slug/reviews", s.handler.List)
	s.router.POST("/listings/:slug/reviews", auth, s.handler.Create)
	s.router.PUT("/listings/:slug/reviews/:id", auth, s.handler.Update)
	s.router.DELETE("/listings/:slug/reviews/:id", auth, s.handler.Delete)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/listings/lakeside-cabin/reviews"
	reqBody := builder.NewReviewBuilder().BuildRequest()

	s.Run("success: returns 201 with the new id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), s.actor, "lakeside-cabin", reqBody.ToInput()).
			Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.ReviewCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseReview{
			{name: "rating lower bound OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
			{name: "rating upper bound OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
			{name: "rating below range (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
			{name: "rating above range (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
			{name: "comment too long (1001)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
			{name: "missing comment", mutate: testutil.Field("comment", nil), expectCode: http.StatusBadRequest},
			{name: "missing rating", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateReview(gomock.Any(), s.actor, "lakeside-cabin", gomock.Any()).
						Return(uuid.New(), nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: maps command errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "unknown listing", err: commands.ErrListingNotFound, status: http.StatusNotFound},
			{name: "domain validation", err: review.ErrInvalidRating, status: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), s.actor, "lakeside-cabin", reqBody.ToInput()).
					Return(uuid.Nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.err.Error())
			})
		}
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *ReviewHandlerTestSuite) TestList() {
	s.Run("success: returns a page with the next cursor", func() {
		views := []*queries.ReviewView{
			builder.NewReviewBuilder().BuildView(),
			builder.NewReviewBuilder().WithRating(3).BuildView(),
		}
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListByListing(gomock.Any(), "lakeside-cabin", &queries.Cursor{After: "abc"}, 2).
			Return(views, next, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/lakeside-cabin/reviews?limit=2&after=abc", nil, "")

		var response resdto.Page[resdto.ReviewResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Results, 2)
		s.Equal(3, response.Results[1].Rating)
		s.Equal(views[0].Author.Username, response.Results[0].Author.Username)
		s.Equal("next-page", response.NextCursor)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListByListing(gomock.Any(), "quiet", nil, queries.DefaultListLimit).
			Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/quiet/reviews", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"results":[]`)
	})

	s.Run("error: 404 for an unknown listing", func() {
		s.mockQueries.EXPECT().ListByListing(gomock.Any(), "missing", nil, queries.DefaultListLimit).
			Return(nil, nil, queries.ErrListingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/missing/reviews", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "listing not found")
	})
}

func (s *ReviewHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/listings/lakeside-cabin/reviews/" + id.String()
	reqBody := builder.NewReviewBuilder().WithComment("Changed my mind").BuildRequest()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), s.actor, "lakeside-cabin", id, reqBody.ToInput()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for someone else's review", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), s.actor, "lakeside-cabin", id, reqBody.ToInput()).
			Return(access.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/listings/lakeside-cabin/reviews/not-a-uuid", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReviewHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/listings/lakeside-cabin/reviews/" + id.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), s.actor, "lakeside-cabin", id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown review", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), s.actor, "lakeside-cabin", id).Return(commands.ErrReviewNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "review not found")
	})
}
