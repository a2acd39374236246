package domain

// Media is an uploaded file as the backend's media library describes it.
type Media struct {
	ID              int                    `json:"id"`
	Name            string                 `json:"name"`
	AlternativeText string                 `json:"alternativeText,omitempty"`
	Caption         string                 `json:"caption,omitempty"`
	Width           int                    `json:"width,omitempty"`
	Height          int                    `json:"height,omitempty"`
	Formats         map[string]MediaFormat `json:"formats,omitempty"`
	Hash            string                 `json:"hash"`
	Ext             string                 `json:"ext"`
	Mime            string                 `json:"mime"`
	Size            float64                `json:"size"`
	URL             string                 `json:"url"`
	PreviewURL      string                 `json:"previewUrl,omitempty"`
	Provider        string                 `json:"provider,omitempty"`
}

// MediaFormat is one derived rendition of a Media (thumbnail, small, ...).
type MediaFormat struct {
	Name   string  `json:"name"`
	Hash   string  `json:"hash"`
	Ext    string  `json:"ext"`
	Mime   string  `json:"mime"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Size   float64 `json:"size"`
	URL    string  `json:"url"`
}
