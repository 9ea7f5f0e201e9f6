package entity

type CloudConfig struct {
	Enabled    bool   `json:"enabled"`
	APIKey     string `json:"apiKey"`
	ProjectURL string `json:"projectUrl"`
	LastSync   int64  `json:"lastSync,omitempty"`
}
