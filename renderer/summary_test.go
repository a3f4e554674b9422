package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/ticker"
)

func TestSummaryMarkdown(t *testing.T) {
	s := &ticker.Summary{
		Rows: []ticker.SummaryRow{
			{
				Ticker:      "GOOGL",
				Exchange:    "NASDAQ",
				Quantity:    ticker.Q(30),
				Price:       ticker.M(150, "USD"),
				MarketValue: ticker.M(4500, "USD"),
				Allocation:  ticker.Percent(85.71),
			},
			{
				Ticker:      "SHOP",
				Exchange:    "TSE",
				Quantity:    ticker.Q(10),
				Price:       ticker.M(75, "USD"),
				MarketValue: ticker.M(750, "USD"),
				Allocation:  ticker.Percent(14.29),
			},
		},
		Total: ticker.M(5250, "USD"),
	}

	got := SummaryMarkdown(s)

	for _, want := range []string{
		"Ticker", "Exchange", "Quantity", "Price", "Market Value", "% Allocation",
		"GOOGL", "NASDAQ", "30", "$150.00", "$4,500.00", "85.71%",
		"SHOP", "TSE", "10", "$75.00", "$750.00", "14.29%",
		"Total portfolio value: $5,250.00.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdownEmpty(t *testing.T) {
	s := &ticker.Summary{Total: ticker.M(0, "USD")}
	got := SummaryMarkdown(s)

	if !strings.Contains(got, "Total portfolio value: $0.00.") {
		t.Errorf("SummaryMarkdown() missing the zero total in:\n%s", got)
	}
	if strings.Contains(got, "| $") {
		t.Errorf("SummaryMarkdown() has value rows for an empty portfolio:\n%s", got)
	}
}
