package spacyd

// apiRequest is the POST /tag payload.
type apiRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// apiResponse mirrors the sidecar's JSON structure.
type apiResponse struct {
	Tokens []apiToken `json:"tokens"`
}

type apiToken struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	POS     string `json:"pos"`
	IsAlpha bool   `json:"is_alpha"`
	IsStop  bool   `json:"is_stop"`
}
