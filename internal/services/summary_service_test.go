package services

import (
	"log/slog"
	"testing"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestSummaryService(t *testing.T) {
	suite.Run(t, new(SummaryServiceSuite))
}

type SummaryServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockTransactionRepositoryInterface
	service  SummaryServiceInterface
}

func (s *SummaryServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = NewSummaryService(s.mockRepo, slog.Default())
}

func (s *SummaryServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SummaryServiceSuite) TestTotalSpend() {
	start := mustDate("2024-03-01")
	end := mustDate("2024-03-31")

	s.mockRepo.EXPECT().TotalSpend(start, end).Return(decimal.NewFromFloat(345.20), nil)

	total, err := s.service.TotalSpend(start, end)
	s.NoError(err)
	s.True(total.Equal(decimal.NewFromFloat(345.20)))
}

func (s *SummaryServiceSuite) TestSpendByCategory() {
	start := mustDate("2024-03-01")
	end := mustDate("2024-03-31")

	s.mockRepo.EXPECT().SpendByCategory(start, end).Return([]models.CategorySpend{
		{Category: models.CategoryFood, Total: decimal.NewFromFloat(120.00), Count: 8},
	}, nil)

	summaries, err := s.service.SpendByCategory(start, end)
	s.NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(models.CategoryFood, summaries[0].Category)
}

func (s *SummaryServiceSuite) TestTopMerchants_DefaultLimit() {
	start := mustDate("2024-03-01")
	end := mustDate("2024-03-31")

	s.mockRepo.EXPECT().TopMerchants(start, end, 10).Return([]models.MerchantSpend{}, nil)

	_, err := s.service.TopMerchants(start, end, 0)
	s.NoError(err)
}

func (s *SummaryServiceSuite) TestSpendTrend() {
	now := mustDate("2024-03-31")
	currentStart := now.AddDate(0, 0, -30)
	previousStart := now.AddDate(0, 0, -60)

	s.mockRepo.EXPECT().TotalSpend(currentStart, now).Return(decimal.NewFromFloat(500.00), nil)
	s.mockRepo.EXPECT().TotalSpend(previousStart, currentStart.AddDate(0, 0, -1)).Return(decimal.NewFromFloat(420.00), nil)

	trend, err := s.service.SpendTrend(now)
	s.NoError(err)
	s.True(trend.Current.Equal(decimal.NewFromFloat(500.00)))
	s.True(trend.Previous.Equal(decimal.NewFromFloat(420.00)))
	s.True(trend.Change.Equal(decimal.NewFromFloat(80.00)))
}

func (s *SummaryServiceSuite) TestMonthlyBreakdown() {
	start := mustDate("2024-01-01")
	end := mustDate("2024-03-31")

	s.mockRepo.EXPECT().SpendByMonthAndCategory(start, end).Return([]models.MonthlyCategorySpend{
		{Month: "2024-01", Category: models.CategoryFood, Total: decimal.NewFromFloat(80.00)},
		{Month: "2024-02", Category: models.CategoryFood, Total: decimal.NewFromFloat(95.00)},
	}, nil)

	breakdown, err := s.service.MonthlyBreakdown(start, end)
	s.NoError(err)
	s.Len(breakdown, 2)
}

func (s *SummaryServiceSuite) TestSpendTrendWindows() {
	// trailing window boundaries must not overlap
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	currentStart := now.AddDate(0, 0, -30)

	s.mockRepo.EXPECT().TotalSpend(currentStart, now).Return(decimal.Zero, nil)
	s.mockRepo.EXPECT().TotalSpend(now.AddDate(0, 0, -60), currentStart.AddDate(0, 0, -1)).Return(decimal.Zero, nil)

	_, err := s.service.SpendTrend(now)
	s.NoError(err)
}
