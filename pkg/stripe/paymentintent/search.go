package paymentintent

// SearchResult is one page of intents from the search endpoint. NextPage is
// absent on the last page; TotalCount is only accurate up to 10,000 matches
// and may be omitted by the server.
type SearchResult struct {
	Object     SearchResultObject `json:"object"`
	Data       []*PaymentIntent   `json:"data"`
	HasMore    bool               `json:"has_more"`
	NextPage   *string            `json:"next_page"`
	TotalCount *uint64            `json:"total_count"`
	URL        string             `json:"url"`
}
