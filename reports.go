package ticker

import "sort"

// Summary provides an at-a-glance valuation of the portfolio at the time its
// securities were fetched.
type Summary struct {
	Rows  []SummaryRow
	Total Money // total portfolio value, in USD
}

// SummaryRow is the valuation of one position.
type SummaryRow struct {
	Ticker      string
	Exchange    string
	Quantity    Quantity
	Price       Money // unit price, in USD
	MarketValue Money
	Allocation  Percent // share of the total portfolio value
}

// NewSummary computes the valuation of every position, sorted by market value
// descending (insertion order breaks ties). When the total value is zero the
// allocation of every row is 0%, never a division error.
func NewSummary(p *Portfolio) *Summary {
	total := p.TotalValue()

	rows := make([]SummaryRow, 0, len(p.Positions()))
	for _, pos := range p.Positions() {
		value := pos.MarketValue()
		var allocation Percent
		if !total.IsZero() {
			allocation = Percent(value.AsFloat() / total.AsFloat() * 100)
		}
		rows = append(rows, SummaryRow{
			Ticker:      pos.Security.Ticker(),
			Exchange:    pos.Security.Exchange(),
			Quantity:    pos.Quantity,
			Price:       pos.Security.USDPrice(),
			MarketValue: value,
			Allocation:  allocation,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[j].MarketValue.LessThan(rows[i].MarketValue)
	})

	return &Summary{Rows: rows, Total: total}
}
