package ticker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// financeBase is the public finance site whose quote pages embed the last
// traded price of a security in a data attribute.
const financeBase = "https://www.google.com/finance"

// The quote page markup carries the machine-readable values in attributes.
const (
	attrLastPrice    = "data-last-price"
	attrCurrencyCode = "data-currency-code"
)

// Quote is the price information of a security at the moment it was fetched.
type Quote struct {
	Ticker   string
	Exchange string
	Price    decimal.Decimal // last traded price, in Currency
	Currency string
	USDPrice decimal.Decimal // Price converted to USD, rounded to 2 digits
}

// Client fetches quotes from the finance site, wearing a fresh browser
// identity on every page fetch.
type Client struct {
	Agents HeaderProvider
	Base   string       // quote page host, defaults to Google Finance
	HTTP   *http.Client // defaults to a client with a 30s timeout
}

// NewClient returns a Client fetching live quotes with headers from the given provider.
func NewClient(agents HeaderProvider) *Client {
	return &Client{Agents: agents}
}

func (c *Client) base() string {
	if c.Base != "" {
		return c.Base
	}
	return financeBase
}

func (c *Client) http() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	// the only deadline policy: no retries, no backoff
	return &http.Client{Timeout: 30 * time.Second}
}

// fetchLastPrice is the one fetch-and-extract routine behind both the price
// and the exchange rate lookups: fresh random headers, one GET, extraction of
// the last price attribute. Every failure past the agent stage wraps kind.
func (c *Client) fetchLastPrice(ctx context.Context, addr string, kind error) (price decimal.Decimal, currency string, err error) {
	headers, err := c.Agents.BrowserHeaders(ctx)
	if err != nil {
		// agent failures keep their own kind
		return decimal.Zero, "", err
	}

	doc, err := hwget(ctx, c.http(), addr, headers)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("%w: %v", kind, err)
	}

	node := doc.Find("[" + attrLastPrice + "]").First()
	raw, found := node.Attr(attrLastPrice)
	if !found {
		return decimal.Zero, "", fmt.Errorf("%w: no last price found on the page %s", kind, addr)
	}
	price, err = decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("%w: invalid last price %q: %v", kind, raw, err)
	}
	if currency, found = node.Attr(attrCurrencyCode); !found || currency == "" {
		currency = "USD"
	}
	return price, currency, nil
}

// FXToUSD returns the conversion rate from the given 3-letter currency to USD.
// Failures are reported as ErrFXFetch.
func (c *Client) FXToUSD(ctx context.Context, currency string) (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s/quote/%s-USD", c.base(), currency)
	rate, _, err := c.fetchLastPrice(ctx, addr, ErrFXFetch)
	return rate, err
}

// PriceInformation fetches the last traded price of a security and normalizes
// it to USD. When the security trades in another currency the USD price is
// price × rate rounded to 2 digits, with the rate obtained from a second
// quote page fetch. Failures are reported as ErrPriceFetch, except exchange
// rate and agent failures which keep their own kind.
func (c *Client) PriceInformation(ctx context.Context, ticker, exchange string) (Quote, error) {
	addr := fmt.Sprintf("%s/quote/%s:%s", c.base(), ticker, exchange)
	price, currency, err := c.fetchLastPrice(ctx, addr, ErrPriceFetch)
	if err != nil {
		return Quote{}, err
	}

	usd := price
	if currency != "USD" {
		rate, err := c.FXToUSD(ctx, currency)
		if err != nil {
			return Quote{}, err
		}
		usd = price.Mul(rate).Round(2)
	}

	return Quote{
		Ticker:   ticker,
		Exchange: exchange,
		Price:    price,
		Currency: currency,
		USDPrice: usd,
	}, nil
}
