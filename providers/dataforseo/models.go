package dataforseo

/*
	SEARCH VOLUME API - INPUT
*/

// SearchVolumeTask describes one batched search-volume request. The live
// endpoint accepts an array of tasks; this client always posts exactly one.
type SearchVolumeTask struct {
	LocationCode   int      `json:"location_code"`
	Keywords       []string `json:"keywords"`
	DateFrom       string   `json:"date_from,omitempty"`
	SearchPartners bool     `json:"search_partners"`
}

/*
	SEARCH VOLUME API - OUTPUT
*/

// SearchVolumeResponse is the top-level envelope returned by the live
// search-volume endpoint. StatusCode is the API-level result: [StatusOK]
// signals success, anything else is a provider-reported failure described by
// StatusMessage.
type SearchVolumeResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Tasks         []Task `json:"tasks"`
}

// Task carries the per-task result list. The provider may silently drop
// keywords it does not recognize, so Result can be shorter than the number of
// keywords submitted.
type Task struct {
	Result []KeywordResult `json:"result"`
}

// KeywordResult holds the raw metrics for a single keyword. Every field other
// than the keyword itself may be null in the provider's response, hence the
// pointer types.
type KeywordResult struct {
	Keyword          *string  `json:"keyword"`
	SearchVolume     *int     `json:"search_volume"`
	Competition      *string  `json:"competition"`
	CompetitionIndex *int     `json:"competition_index"`
	CPC              *float64 `json:"cpc"`
}
