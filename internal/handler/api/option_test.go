//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/api"
	resdto "github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/dto/response"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/tests/common/builder"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/tests/common/httptest"
	queriesmock "github.com/PandaPandaBE/oud-zwembad-booking-tool/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OptionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockOptionQueries
}

func (s *OptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOptionQueries(s.mockCtrl)
	s.router.GET("/api/options", api.NewOptionHandler(s.mockQueries).List)
}

func (s *OptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(OptionHandlerTestSuite))
}

func (s *OptionHandlerTestSuite) TestList() {
	s.Run("success: prices in euros", func() {
		desc := "Toegang tot het zwembad"
		pool := builder.NewOptionBuilder().With(func(o *builder.OptionBuilder) {
			o.Description = &desc
			o.PriceCents = 4995
		}).BuildView()
		s.mockQueries.EXPECT().ListActive(gomock.Any()).Return([]*queries.OptionView{pool}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/options", nil)

		var body httptest.Envelope[[]resdto.OptionResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Data, 1)
		s.Equal(pool.ID, body.Data[0].ID)
		s.Equal("Zwembad", body.Data[0].Name)
		s.Equal(49.95, body.Data[0].Price)
		s.Equal(int32(1), body.Data[0].SortOrder)
		s.Require().NotNil(body.Data[0].Description)
		s.Equal(desc, *body.Data[0].Description)
	})

	s.Run("failure", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/options", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError,
			"Er is een fout opgetreden bij het ophalen van opties")
	})
}
