// Package renderer renders reports to markdown.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/ticker"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the portfolio valuation table and its grand total.
func SummaryMarkdown(s *ticker.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Exchange", "Quantity", "Price", "Market Value", "% Allocation"},
	}
	for _, r := range s.Rows {
		table.Rows = append(table.Rows, []string{
			r.Ticker,
			r.Exchange,
			r.Quantity.String(),
			r.Price.String(),
			r.MarketValue.String(),
			r.Allocation.String(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total portfolio value: %s.", s.Total))

	return doc.String()
}
