//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"grooming-salon/internal/domain/user"
	"grooming-salon/internal/handler/api"
	reqdto "grooming-salon/internal/handler/dto/request"
	resdto "grooming-salon/internal/handler/dto/response"
	"grooming-salon/internal/pkg/ptr"
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

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.UserHandler
	adminID      uuid.UUID
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockCommands, s.mockQueries)
	s.adminID = uuid.New()

	g := s.router.Group("/users", fakeAuth(s.adminID, user.RoleAdmin))
	g.GET("", s.handler.List)
	g.GET("/:id", s.handler.Get)
	g.POST("", s.handler.Create)
	g.PATCH("/:id", s.handler.Update)
	g.PUT("/:id/password", s.handler.ResetPassword)
	g.DELETE("/:id", s.handler.Delete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestList() {
	s.Run("success: never exposes password hashes", func() {
		views := []queries.UserView{
			builder.NewUserBuilder().AsAdmin().BuildView(),
			builder.NewUserBuilder().WithEmail("second@example.com").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("admin", body[0]["role"])
		for _, u := range body {
			s.NotContains(u, "password_hash")
			s.NotContains(u, "password")
		}
	})
}

func (s *UserHandlerTestSuite) TestGet() {
	view := builder.NewUserBuilder().BuildView()

	s.Run("success: returns the user", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(&view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+view.ID.String(), nil, "bearer-token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Email, body.Email)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}

func (s *UserHandlerTestSuite) TestCreate() {
	url := "/users"
	reqBody := reqdto.CreateUserRequest{
		Email:    "new@example.com",
		Name:     "박미용",
		Password: "password123",
		Role:     "groomer",
	}
	createdID := uuid.New()

	s.Run("success: returns 201 Created with the new id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(createdID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(createdID.String(), body["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "password too short (7 chars)", mutate: testutil.Field("password", "short12")},
			{name: "unknown role", mutate: testutil.Field("role", "owner")},
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 Conflict when the email is registered", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(uuid.Nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already registered")
	})
}

func (s *UserHandlerTestSuite) TestUpdate() {
	id := uuid.New()

	s.Run("success: promotes a groomer", func() {
		want := reqdto.UpdateUserRequest{Role: ptr.Of("admin")}
		s.mockCommands.EXPECT().Update(gomock.Any(), id, want).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/"+id.String(), map[string]any{"role": "admin"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on an unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/"+id.String(), map[string]any{"role": "owner"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *UserHandlerTestSuite) TestResetPassword() {
	id := uuid.New()
	url := "/users/" + id.String() + "/password"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ResetPassword(gomock.Any(), id, reqdto.ResetPasswordRequest{Password: "new-password"}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"password": "new-password"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 when the password is too short", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"password": "short"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.adminID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden when deleting yourself", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.adminID, s.adminID).Return(commands.ErrCannotDeleteSelf).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/"+s.adminID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "cannot delete your own account")
	})
}
