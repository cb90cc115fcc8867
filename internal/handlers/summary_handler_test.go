package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/services"
	"finance-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SummaryHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	echo               *echo.Echo
	mockSummaryService *service_mocks.MockSummaryServiceInterface
	handler            *SummaryHandler
}

func TestSummaryHandlerSuite(t *testing.T) {
	suite.Run(t, new(SummaryHandlerTestSuite))
}

func (s *SummaryHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockSummaryService = service_mocks.NewMockSummaryServiceInterface(s.ctrl)
	s.handler = NewSummaryHandler(s.mockSummaryService)
}

func (s *SummaryHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SummaryHandlerTestSuite) TestGetSummary_ExplicitRange() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?startDate=2024-03-01&endDate=2024-03-31", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	start, _ := time.Parse("2006-01-02", "2024-03-01")
	end, _ := time.Parse("2006-01-02", "2024-03-31")

	s.mockSummaryService.EXPECT().TotalSpend(start, end).Return(decimal.NewFromFloat(345.20), nil)
	s.mockSummaryService.EXPECT().SpendByCategory(start, end).Return([]models.CategorySpend{
		{Category: models.CategoryFood, Total: decimal.NewFromFloat(120.00), Count: 8},
	}, nil)

	err := s.handler.GetSummary(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("2024-03-01", response["startDate"])
	s.Equal("2024-03-31", response["endDate"])
	s.Equal("345.2", response["totalSpend"])
}

func (s *SummaryHandlerTestSuite) TestGetSummary_DefaultRange() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockSummaryService.EXPECT().
		TotalSpend(gomock.Any(), gomock.Any()).
		DoAndReturn(func(start, end time.Time) (decimal.Decimal, error) {
			s.InDelta(30, end.Sub(start).Hours()/24, 1)
			return decimal.Zero, nil
		})
	s.mockSummaryService.EXPECT().SpendByCategory(gomock.Any(), gomock.Any()).Return([]models.CategorySpend{}, nil)

	err := s.handler.GetSummary(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *SummaryHandlerTestSuite) TestGetSummary_InvalidDate() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?startDate=bad", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.GetSummary(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_005")
}

func (s *SummaryHandlerTestSuite) TestGetSummary_ReversedRange() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?startDate=2024-03-31&endDate=2024-03-01", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.GetSummary(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_005")
}

func (s *SummaryHandlerTestSuite) TestGetMonthlyBreakdown() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary/monthly?startDate=2024-01-01&endDate=2024-03-31", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	start, _ := time.Parse("2006-01-02", "2024-01-01")
	end, _ := time.Parse("2006-01-02", "2024-03-31")

	s.mockSummaryService.EXPECT().MonthlyBreakdown(start, end).Return([]models.MonthlyCategorySpend{
		{Month: "2024-01", Category: models.CategoryFood, Total: decimal.NewFromFloat(80.00)},
	}, nil)

	err := s.handler.GetMonthlyBreakdown(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "2024-01")
}

func (s *SummaryHandlerTestSuite) TestGetTopMerchants() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/merchants/top?startDate=2024-03-01&endDate=2024-03-31&limit=5", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	start, _ := time.Parse("2006-01-02", "2024-03-01")
	end, _ := time.Parse("2006-01-02", "2024-03-31")

	s.mockSummaryService.EXPECT().TopMerchants(start, end, 5).Return([]models.MerchantSpend{
		{Merchant: "Tesco", Total: decimal.NewFromFloat(120.00), Count: 8},
	}, nil)

	err := s.handler.GetTopMerchants(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Tesco")
}

func (s *SummaryHandlerTestSuite) TestGetSpendTrend() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary/trend", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockSummaryService.EXPECT().SpendTrend(gomock.Any()).Return(&services.SpendTrend{
		Current:  decimal.NewFromFloat(500.00),
		Previous: decimal.NewFromFloat(420.00),
		Change:   decimal.NewFromFloat(80.00),
	}, nil)

	err := s.handler.GetSpendTrend(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("80", response["change"])
}
