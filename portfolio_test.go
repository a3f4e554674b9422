package ticker

import "testing"

// sec builds a security with a known USD price, no network involved.
func sec(ticker, exchange string, price float64, currency string, usdPrice float64) Security {
	return newSecurity(Quote{
		Ticker:   ticker,
		Exchange: exchange,
		Price:    newDecimal(price),
		Currency: currency,
		USDPrice: newDecimal(usdPrice),
	})
}

func TestPortfolioTotalValue(t *testing.T) {
	p := NewPortfolio()
	p.Add(sec("MSFT", "NASDAQ", 50, "USD", 50), 2)
	p.Add(sec("GOOGL", "NASDAQ", 150, "USD", 150), 1)

	if want := M(250, "USD"); !p.TotalValue().Equal(want) {
		t.Errorf("TotalValue() = %s, want %s", p.TotalValue(), want)
	}
}

func TestPortfolioTotalValueOrderIndependent(t *testing.T) {
	a := sec("A", "X", 10, "USD", 10)
	b := sec("B", "X", 20, "USD", 20)
	c := sec("C", "X", 30, "USD", 30)

	forward := NewPortfolio()
	forward.Add(a, 1)
	forward.Add(b, 2)
	forward.Add(c, 3)

	backward := NewPortfolio()
	backward.Add(c, 3)
	backward.Add(b, 2)
	backward.Add(a, 1)

	if !forward.TotalValue().Equal(backward.TotalValue()) {
		t.Errorf("TotalValue() depends on insertion order: %s != %s",
			forward.TotalValue(), backward.TotalValue())
	}
}

func TestPortfolioEmpty(t *testing.T) {
	p := NewPortfolio()
	if !p.TotalValue().IsZero() {
		t.Errorf("TotalValue() = %s, want zero", p.TotalValue())
	}
	if len(p.Positions()) != 0 {
		t.Errorf("Positions() has %d elements, want none", len(p.Positions()))
	}
}

func TestPositionMarketValue(t *testing.T) {
	pos := Position{Security: sec("SHOP", "TSE", 100, "CAD", 75), Quantity: Q(10)}
	if want := M(750, "USD"); !pos.MarketValue().Equal(want) {
		t.Errorf("MarketValue() = %s, want %s", pos.MarketValue(), want)
	}
}
