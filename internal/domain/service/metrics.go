package service

// MarketMetrics records business counters.
type MarketMetrics interface {
	RequestCreated()
	OfferSubmitted()
	OfferStatusChanged(status string)
	MessagePosted(senderRole string)
	RequestsExpired(n int)
	NotificationsSent(success, failure int)
}
