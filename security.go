package ticker

import "context"

// Security represents a tradable stock identified by its ticker and exchange,
// carrying the price captured when it was built. It is immutable: refreshing a
// price means building a new Security.
type Security struct {
	ticker   string
	exchange string
	price    Money // last traded price in its native currency
	usdPrice Money // price normalized to USD
}

// NewSecurity fetches the current quote for (ticker, exchange) and returns the
// Security holding it. All network round trips happen here: a Security that
// exists always carries a valid price, and a failed fetch yields an error, not
// a zero-priced security.
func NewSecurity(ctx context.Context, c *Client, ticker, exchange string) (Security, error) {
	q, err := c.PriceInformation(ctx, ticker, exchange)
	if err != nil {
		return Security{}, err
	}
	return newSecurity(q), nil
}

// newSecurity builds a Security from an already fetched quote.
func newSecurity(q Quote) Security {
	return Security{
		ticker:   q.Ticker,
		exchange: q.Exchange,
		price:    M(q.Price, q.Currency),
		usdPrice: M(q.USDPrice, "USD"),
	}
}

// Ticker returns the security's ticker symbol.
func (s Security) Ticker() string { return s.ticker }

// Exchange returns the exchange code the security trades on.
func (s Security) Exchange() string { return s.exchange }

// Price returns the last traded price in the security's native currency.
func (s Security) Price() Money { return s.price }

// Currency returns the 3-letter code of the security's native currency.
func (s Security) Currency() string { return s.price.Currency() }

// USDPrice returns the last traded price normalized to USD.
func (s Security) USDPrice() Money { return s.usdPrice }
