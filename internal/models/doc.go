// Package models defines the domain entities for Tripmate.
//
// Entities mirror the relational schema one to one: users own trips, trips
// have members, daily itineraries, and expenses; itineraries hold ordered
// activities; expenses carry per-user splits.
//
// Conventions:
//   - IDs are int64 autoincrement values assigned by the store.
//   - Timestamps are Unix seconds.
//   - Monetary values are int64 cents (fixed-point, two decimals). They are
//     converted to float64 only at the API boundary; see money.go.
//   - Optional columns map to pointer fields (numbers) or the empty string.
package models
