package ticker

// Position pairs a security with the number of shares held.
type Position struct {
	Security Security
	Quantity Quantity
}

// MarketValue returns quantity × USD price.
func (p Position) MarketValue() Money {
	return p.Security.USDPrice().Mul(p.Quantity)
}

// Portfolio is an ordered collection of positions. It holds no other state:
// the total value is recomputed on every call.
type Portfolio struct {
	positions []Position
}

// NewPortfolio returns a portfolio holding the given positions, in order.
func NewPortfolio(positions ...Position) *Portfolio {
	return &Portfolio{positions: positions}
}

// Add appends a position of quantity shares of the security.
func (p *Portfolio) Add(s Security, quantity int64) {
	p.positions = append(p.positions, Position{Security: s, Quantity: Q(quantity)})
}

// Positions returns the positions in insertion order.
func (p *Portfolio) Positions() []Position {
	return p.positions
}

// TotalValue returns the sum of every position's market value, in USD.
func (p *Portfolio) TotalValue() Money {
	total := M(0, "USD")
	for _, pos := range p.positions {
		total = total.Add(pos.MarketValue())
	}
	return total
}
