package ticker

import "errors"

// One error kind per fetch stage. Every failure of a stage (transport, data
// shape, value conversion) wraps the matching sentinel with %w so callers can
// classify it with errors.Is while the upstream cause stays in the message.
var (
	// ErrAgentFetch reports a failure to obtain a browser header set from the
	// header-rotation service.
	ErrAgentFetch = errors.New("browser agent fetch failed")

	// ErrPriceFetch reports a failure to obtain the last traded price of a
	// security from its quote page.
	ErrPriceFetch = errors.New("price information fetch failed")

	// ErrFXFetch reports a failure to obtain a currency conversion rate to USD.
	ErrFXFetch = errors.New("exchange rate fetch failed")
)
