// Package selector matches atoms against allow-lists of identifying fields
// and bundles two such selectors, plus ordering rules, into a PairSpec that
// configures the pair package's enumeration.
//
// An empty allow-list on any Selector field means "any value admitted" —
// there is no separate wildcard sentinel to track.
package selector
