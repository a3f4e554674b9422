// Package ticker values a portfolio of stock positions from live quote pages.
//
// A Client scrapes the last traded price (and currency) of a security from a
// public finance site, converting non-USD prices to USD through a second
// currency-pair scrape. Securities are built through an explicit factory that
// performs the network round trips, then collected into Positions and a
// Portfolio whose valuation is rendered as a summary table.
package ticker
