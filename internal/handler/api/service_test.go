//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"grooming-salon/internal/domain/user"
	"grooming-salon/internal/handler/api"
	resdto "grooming-salon/internal/handler/dto/response"
	"grooming-salon/internal/usecase/commands"
	"grooming-salon/internal/usecase/queries"
	"grooming-salon/tests/common/builder"
	"grooming-salon/tests/common/httptest"
	"grooming-salon/tests/common/testutil"
	commandsmock "grooming-salon/tests/mock/commands"
	queriesmock "grooming-salon/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockServiceCommands
	mockQueries  *queriesmock.MockServiceQueries
	handler      *api.ServiceHandler
}

func (s *ServiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockServiceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockServiceQueries(s.mockCtrl)
	s.handler = api.NewServiceHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/services", fakeAuth(uuid.New(), user.RoleAdmin))
	g.GET("", s.handler.List)
	g.GET("/:id", s.handler.Get)
	g.POST("", s.handler.Create)
	g.PUT("/:id", s.handler.Update)
	g.DELETE("/:id", s.handler.Delete)
}

func (s *ServiceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestServiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ServiceHandlerTestSuite))
}

func (s *ServiceHandlerTestSuite) TestList() {
	s.Run("success: renders a missing price as null", func() {
		services := []queries.ServiceView{
			builder.NewServiceBuilder().WithName("목욕").WithDuration(1).WithPrice(30000).BuildView(),
			builder.NewServiceBuilder().WithName("상담").WithDuration(0.5).WithoutPrice().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(services, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("목욕", body[0]["name"])
		s.InDelta(30000.0, body[0]["price"], 1e-9)
		s.Contains(body[1], "price")
		s.Nil(body[1]["price"])
		s.InDelta(0.5, body[1]["duration_hours"], 1e-9)
	})

	s.Run("error: 500 when the read fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ServiceHandlerTestSuite) TestGet() {
	view := builder.NewServiceBuilder().BuildView()

	s.Run("success: returns the service", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(&view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/"+view.ID.String(), nil, "bearer-token")

		var body resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Name, body.Name)
		s.Require().NotNil(body.Price)
		s.Equal(*view.Price, *body.Price)
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(nil, queries.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "service not found")
	})
}

func (s *ServiceHandlerTestSuite) TestCreate() {
	url := "/services"
	reqBody := builder.NewServiceBuilder().BuildDTO()
	createdID := uuid.New()

	s.Run("success: returns 201 Created with the new id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(createdID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(createdID.String(), body["id"])
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/services/" + createdID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "price omitted (consultation)", mutate: testutil.Field("price", nil), expectCode: http.StatusCreated},
			{name: "price zero", mutate: testutil.Field("price", 0), expectCode: http.StatusCreated},
			{name: "negative price", mutate: testutil.Field("price", -1), expectCode: http.StatusBadRequest},
			{name: "half hour duration", mutate: testutil.Field("duration_hours", 0.5), expectCode: http.StatusCreated},
			{name: "zero duration", mutate: testutil.Field("duration_hours", 0), expectCode: http.StatusBadRequest},
			{name: "tag bath", mutate: testutil.Field("tag", "bath"), expectCode: http.StatusCreated},
			{name: "unknown tag", mutate: testutil.Field("tag", "nails"), expectCode: http.StatusBadRequest},
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(createdID, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 409 Conflict when the name is taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(uuid.Nil, commands.ErrServiceNameTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "service name already exists")
	})
}

func (s *ServiceHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	reqBody := builder.NewServiceBuilder().WithPrice(60000).BuildDTO()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, reqBody).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/services/"+id.String(), reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, reqBody).Return(commands.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/services/"+id.String(), reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "service not found")
	})
}

func (s *ServiceHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/services/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/services/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "service not found")
	})
}
