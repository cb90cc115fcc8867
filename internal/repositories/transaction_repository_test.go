package repositories

import (
	"testing"
	"time"

	"finance-ledger/internal/database"
	"finance-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	s.Require().NoError(err)
	return d
}

func (s *TransactionRepositorySuite) seed(date, merchant string, amount float64, category string) *models.Transaction {
	txn := &models.Transaction{
		Date:     s.date(date),
		Merchant: merchant,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Source:   models.SourceManual,
	}
	s.Require().NoError(s.repo.Create(txn))
	return txn
}

func (s *TransactionRepositorySuite) TestCreate() {
	txn := &models.Transaction{
		Date:     s.date("2024-03-10"),
		Merchant: "Tesco",
		Amount:   decimal.NewFromFloat(23.50),
		Category: models.CategoryFood,
		Source:   models.SourceManual,
	}

	err := s.repo.Create(txn)
	s.NoError(err)
	s.NotEqual(uuid.Nil, txn.ID)
	s.NotZero(txn.CreatedAt)
}

func (s *TransactionRepositorySuite) TestCreate_InvalidMerchant() {
	txn := &models.Transaction{
		Date:   s.date("2024-03-10"),
		Amount: decimal.NewFromFloat(23.50),
	}

	err := s.repo.Create(txn)
	s.ErrorIs(err, models.ErrMerchantMissing)
}

func (s *TransactionRepositorySuite) TestCreateBatch() {
	transactions := []models.Transaction{
		{Date: s.date("2024-03-01"), Merchant: "Tesco", Amount: decimal.NewFromFloat(12.00), Category: models.CategoryFood, Source: models.SourceImport},
		{Date: s.date("2024-03-02"), Merchant: "Uber", Amount: decimal.NewFromFloat(8.40), Category: models.CategoryTransport, Source: models.SourceImport},
	}

	err := s.repo.CreateBatch(transactions)
	s.NoError(err)

	count, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(2), count)
}

func (s *TransactionRepositorySuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(nil))
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetRecent_OrderedByDate() {
	s.seed("2024-03-01", "Tesco", 10.00, models.CategoryFood)
	s.seed("2024-03-15", "Uber", 8.00, models.CategoryTransport)
	s.seed("2024-03-08", "Netflix", 9.99, models.CategorySubscriptions)

	recent, err := s.repo.GetRecent(2)
	s.NoError(err)
	s.Require().Len(recent, 2)
	s.Equal("Uber", recent[0].Merchant)
	s.Equal("Netflix", recent[1].Merchant)
}

func (s *TransactionRepositorySuite) TestGetByDateRange() {
	s.seed("2024-02-28", "Tesco", 10.00, models.CategoryFood)
	s.seed("2024-03-05", "Uber", 8.00, models.CategoryTransport)
	s.seed("2024-03-20", "Netflix", 9.99, models.CategorySubscriptions)
	s.seed("2024-04-01", "Tesco", 15.00, models.CategoryFood)

	transactions, err := s.repo.GetByDateRange(s.date("2024-03-01"), s.date("2024-03-31"))
	s.NoError(err)
	s.Require().Len(transactions, 2)
	s.Equal("Uber", transactions[0].Merchant)
	s.Equal("Netflix", transactions[1].Merchant)
}

func (s *TransactionRepositorySuite) TestGetWithFilters() {
	s.seed("2024-03-01", "Tesco Express", 10.00, models.CategoryFood)
	s.seed("2024-03-05", "Uber", 8.00, models.CategoryTransport)
	s.seed("2024-03-10", "Tesco", 22.00, models.CategoryFood)

	transactions, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		Category: models.CategoryFood,
	})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(transactions, 2)

	transactions, total, err = s.repo.GetWithFilters(models.TransactionFilters{
		Merchant: "tesco",
	})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(transactions, 2)

	start := "2024-03-04"
	transactions, total, err = s.repo.GetWithFilters(models.TransactionFilters{
		StartDate: &start,
		Limit:     1,
	})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(transactions, 1)
	s.Equal("Tesco", transactions[0].Merchant)
}

func (s *TransactionRepositorySuite) TestMerchantExists_NormalizesLookup() {
	s.seed("2024-03-01", "  Corner Cafe  ", 4.50, models.CategoryFood)

	exists, err := s.repo.MerchantExists("corner cafe")
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.MerchantExists("CORNER CAFE")
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.MerchantExists("Other Cafe")
	s.NoError(err)
	s.False(exists)
}

func (s *TransactionRepositorySuite) TestAverageAmount() {
	avg, err := s.repo.AverageAmount()
	s.NoError(err)
	s.Zero(avg)

	s.seed("2024-03-01", "Tesco", 10.00, models.CategoryFood)
	s.seed("2024-03-02", "Uber", 30.00, models.CategoryTransport)

	avg, err = s.repo.AverageAmount()
	s.NoError(err)
	s.InDelta(20.0, avg, 1e-9)
}

func (s *TransactionRepositorySuite) TestTotalSpend_ExcludesIncome() {
	s.seed("2024-03-01", "Tesco", 10.00, models.CategoryFood)
	s.seed("2024-03-02", "Uber", 8.00, models.CategoryTransport)
	s.seed("2024-03-25", "Acme Payroll", 2500.00, models.CategoryIncome)

	total, err := s.repo.TotalSpend(s.date("2024-03-01"), s.date("2024-03-31"))
	s.NoError(err)
	s.True(total.Equal(decimal.NewFromFloat(18.00)), "got %s", total)
}

func (s *TransactionRepositorySuite) TestSpendByCategory() {
	s.seed("2024-03-01", "Tesco", 10.00, models.CategoryFood)
	s.seed("2024-03-03", "Sainsburys", 25.00, models.CategoryFood)
	s.seed("2024-03-05", "Uber", 8.00, models.CategoryTransport)

	summaries, err := s.repo.SpendByCategory(s.date("2024-03-01"), s.date("2024-03-31"))
	s.NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal(models.CategoryFood, summaries[0].Category)
	s.True(summaries[0].Total.Equal(decimal.NewFromFloat(35.00)))
	s.Equal(int64(2), summaries[0].Count)
	s.Equal(models.CategoryTransport, summaries[1].Category)
}

func (s *TransactionRepositorySuite) TestSpendByMonthAndCategory() {
	s.seed("2024-02-10", "Tesco", 10.00, models.CategoryFood)
	s.seed("2024-02-20", "Tesco", 5.00, models.CategoryFood)
	s.seed("2024-03-05", "Uber", 8.00, models.CategoryTransport)

	summaries, err := s.repo.SpendByMonthAndCategory(s.date("2024-02-01"), s.date("2024-03-31"))
	s.NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal("2024-02", summaries[0].Month)
	s.Equal(models.CategoryFood, summaries[0].Category)
	s.True(summaries[0].Total.Equal(decimal.NewFromFloat(15.00)))
	s.Equal("2024-03", summaries[1].Month)
	s.Equal(models.CategoryTransport, summaries[1].Category)
}

func (s *TransactionRepositorySuite) TestTopMerchants() {
	s.seed("2024-03-01", "Tesco", 10.00, models.CategoryFood)
	s.seed("2024-03-03", "Tesco", 25.00, models.CategoryFood)
	s.seed("2024-03-05", "Uber", 8.00, models.CategoryTransport)
	s.seed("2024-03-25", "Acme Payroll", 2500.00, models.CategoryIncome)

	merchants, err := s.repo.TopMerchants(s.date("2024-03-01"), s.date("2024-03-31"), 5)
	s.NoError(err)
	s.Require().Len(merchants, 2)
	s.Equal("Tesco", merchants[0].Merchant)
	s.True(merchants[0].Total.Equal(decimal.NewFromFloat(35.00)))
	s.Equal(int64(2), merchants[0].Count)
	s.Equal("Uber", merchants[1].Merchant)
}

func (s *TransactionRepositorySuite) TestSpendBetween_ByCategory() {
	s.seed("2024-03-01", "Tesco", 10.00, models.CategoryFood)
	s.seed("2024-03-05", "Uber", 8.00, models.CategoryTransport)

	total, err := s.repo.SpendBetween(s.date("2024-03-01"), s.date("2024-03-31"), models.CategoryFood)
	s.NoError(err)
	s.True(total.Equal(decimal.NewFromFloat(10.00)))

	total, err = s.repo.SpendBetween(s.date("2024-03-01"), s.date("2024-03-31"), "")
	s.NoError(err)
	s.True(total.Equal(decimal.NewFromFloat(18.00)))
}
