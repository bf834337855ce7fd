// Package dates normalizes heterogeneous human-written date text into a
// canonical form.
//
// The rota page mixes styles freely: "Today", "Dec 20, 2025 at 3:30pm EST",
// "12/20", "posted on 2025-12-20". Normalize applies a fixed sequence of
// recognition rules and emits either an ISO calendar date, a preserved
// month-name form, or the explicit sentinel "unparseable".
package dates
