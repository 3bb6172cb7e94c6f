// internal/search/config.go
package search

import "time"

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	TTL     time.Duration
}
