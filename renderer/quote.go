package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/ticker"
	md "github.com/nao1215/markdown"
)

// QuoteMarkdown renders a single quote as a one-row table, headers as labels
// and prices in the row. The USD column appears only when the security trades
// in another currency.
func QuoteMarkdown(q ticker.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s:%s", q.Ticker, q.Exchange))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight},
		Header:    []string{"Last Price"},
		Rows:      [][]string{{ticker.M(q.Price, q.Currency).String()}},
	}
	if q.Currency != "USD" {
		table.Alignment = append(table.Alignment, md.AlignRight)
		table.Header = append(table.Header, "USD Price")
		table.Rows[0] = append(table.Rows[0], ticker.M(q.USDPrice, "USD").String())
	}
	doc.Table(table)

	return doc.String()
}
