package analytics

import "fmt"

// Default thresholds for the single-candidate receipt check
const (
	DefaultHighAmountThreshold    = 100.0
	DefaultNoveltyAmountThreshold = 40.0
	DefaultAverageMultiple        = 3.0
)

// SpendHistory exposes the all-time aggregates the receipt check needs.
// The transaction repository satisfies this interface.
type SpendHistory interface {
	// MerchantExists reports whether the merchant has ever been seen,
	// compared case-insensitively
	MerchantExists(merchant string) (bool, error)
	// AverageAmount returns the all-time average transaction amount,
	// 0.0 when no history exists
	AverageAmount() (float64, error)
}

// ReceiptCheck applies independent heuristics to a single candidate
// transaction before it is confirmed into the ledger. Unlike the batch
// detector its novelty test is all-time, not window-relative, and its
// rules do not short-circuit: every matching rule contributes a reason.
type ReceiptCheck struct {
	HighAmountThreshold    float64
	NoveltyAmountThreshold float64
	AverageMultiple        float64
}

// NewReceiptCheck creates a receipt check with the default thresholds
func NewReceiptCheck() *ReceiptCheck {
	return &ReceiptCheck{
		HighAmountThreshold:    DefaultHighAmountThreshold,
		NoveltyAmountThreshold: DefaultNoveltyAmountThreshold,
		AverageMultiple:        DefaultAverageMultiple,
	}
}

// Check returns a human-readable reason for every heuristic the
// candidate matches. An empty slice means nothing looked unusual.
func (rc *ReceiptCheck) Check(history SpendHistory, merchant string, amount float64) ([]string, error) {
	reasons := []string{}

	if amount >= rc.HighAmountThreshold {
		reasons = append(reasons, fmt.Sprintf("High amount (>= £%.0f).", rc.HighAmountThreshold))
	}

	exists, err := history.MerchantExists(merchant)
	if err != nil {
		return nil, fmt.Errorf("failed to check merchant history: %w", err)
	}
	if !exists && amount >= rc.NoveltyAmountThreshold {
		reasons = append(reasons, fmt.Sprintf("New merchant and amount >= £%.0f.", rc.NoveltyAmountThreshold))
	}

	average, err := history.AverageAmount()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch average amount: %w", err)
	}
	if average > 0 && amount >= average*rc.AverageMultiple {
		reasons = append(reasons, fmt.Sprintf("Amount is >= 3x your average transaction (£%.2f).", average))
	}

	return reasons, nil
}
