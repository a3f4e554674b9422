package cmd

import "testing"

func TestParsePosition(t *testing.T) {
	testCases := []struct {
		name      string
		arg       string
		symbol    string
		exchange  string
		quantity  int64
		expectErr bool
	}{
		{"Valid", "SHOP:TSE:10", "SHOP", "TSE", 10, false},
		{"Valid zero quantity", "MSFT:NASDAQ:0", "MSFT", "NASDAQ", 0, false},
		{"Missing quantity", "SHOP:TSE", "", "", 0, true},
		{"Too many fields", "SHOP:TSE:10:extra", "", "", 0, true},
		{"Empty ticker", ":TSE:10", "", "", 0, true},
		{"Empty exchange", "SHOP::10", "", "", 0, true},
		{"Non numeric quantity", "SHOP:TSE:ten", "", "", 0, true},
		{"Empty string", "", "", "", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			symbol, exchange, quantity, err := parsePosition(tc.arg)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Fatalf("parsePosition(%q) returned error: %v, want error: %v", tc.arg, err, tc.expectErr)
			}
			if hasErr {
				return
			}
			if symbol != tc.symbol || exchange != tc.exchange || quantity != tc.quantity {
				t.Errorf("parsePosition(%q) = (%q, %q, %d), want (%q, %q, %d)",
					tc.arg, symbol, exchange, quantity, tc.symbol, tc.exchange, tc.quantity)
			}
		})
	}
}
