package bridge

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// LatestQuote returns the most recent intraday price the bridge knows for a
// symbol. The chart payload is deep and loosely shaped (it mirrors whatever
// upstream feed the backend proxied), so the price is extracted by path
// rather than by a typed struct:
//
//	{"series": {"intraday": {"data": [[ts, price], [ts, price], ...]}}}
func (c *Client) LatestQuote(ctx context.Context, symbol string) (float64, error) {
	var jobj any
	path := "/v1/quotes/" + url.PathEscape(symbol) + "/chart?series=intraday"
	if err := c.get(ctx, path, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error fetching quote for %q: %w", symbol, err)
	}

	const pricePath = "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(pricePath, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing quote for %q: %q %w", symbol, pricePath, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	price, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("quote for %q is not a number: %v", symbol, jval)
	}
	return price, nil
}
