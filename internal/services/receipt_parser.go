package services

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrReceiptUnparseable = errors.New("could not extract receipt fields from text")

	isoDatePattern   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	slashDatePattern = regexp.MustCompile(`\b(\d{2})/(\d{2})/(\d{4})\b`)
	amountPattern    = regexp.MustCompile(`£?\s*(\d+\.\d{2})\b`)
)

// textReceiptParser extracts transaction fields from OCR-style receipt text
// with line and pattern heuristics. The merchant is the first non-empty line,
// the date is the first recognisable date, and the amount is taken from a
// "total" line if one exists, otherwise the largest amount on the receipt.
type textReceiptParser struct{}

// NewTextReceiptParser creates a heuristic receipt text parser
func NewTextReceiptParser() ReceiptParserInterface {
	return &textReceiptParser{}
}

func (p *textReceiptParser) Parse(text string) (date, merchant string, amount float64, err error) {
	lines := splitNonEmptyLines(text)
	if len(lines) == 0 {
		return "", "", 0, ErrReceiptUnparseable
	}

	merchant = lines[0]
	date = findDate(text)

	amount = findTotalAmount(lines)
	if amount == 0 {
		amount = findLargestAmount(text)
	}

	if date == "" || amount == 0 {
		return "", "", 0, ErrReceiptUnparseable
	}

	return date, merchant, amount, nil
}

func splitNonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func findDate(text string) string {
	if match := isoDatePattern.FindString(text); match != "" {
		if _, err := time.Parse("2006-01-02", match); err == nil {
			return match
		}
	}

	if match := slashDatePattern.FindStringSubmatch(text); match != nil {
		// UK convention: dd/mm/yyyy
		candidate := match[3] + "-" + match[2] + "-" + match[1]
		if _, err := time.Parse("2006-01-02", candidate); err == nil {
			return candidate
		}
	}

	return ""
}

func findTotalAmount(lines []string) float64 {
	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), "total") {
			continue
		}
		if match := amountPattern.FindStringSubmatch(line); match != nil {
			if value, err := strconv.ParseFloat(match[1], 64); err == nil {
				return value
			}
		}
	}
	return 0
}

func findLargestAmount(text string) float64 {
	var largest float64
	for _, match := range amountPattern.FindAllStringSubmatch(text, -1) {
		if value, err := strconv.ParseFloat(match[1], 64); err == nil && value > largest {
			largest = value
		}
	}
	return largest
}
