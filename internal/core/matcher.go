package core

// Matcher is the pluggable crossing algorithm driving a book. The exchange
// guarantees the order passed Quote and Order validation beforehand; the
// matcher must record every fill through NewTrade and may leave the order
// NEW only when it genuinely did not match.
type Matcher interface {
	Submit(book *Book, order *Order) (*MatchingResult, error)
}
