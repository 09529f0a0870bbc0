package entity

// Highlight labels a half-open rune range [StartIndex, EndIndex) of a document.
type Highlight struct {
	Id         string `json:"id"`
	LabelType  string `json:"label_type"`
	Text       string `json:"text"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}
