// internal/pricing/config.go
package pricing

type Config struct {
	BaseTransportCost float64
	GuideDailyCost    float64
	MaxHotelOptions   int
	Currency          string
}

func DefaultConfig() *Config {
	return &Config{
		BaseTransportCost: 50,
		GuideDailyCost:    35,
		MaxHotelOptions:   5,
		Currency:          "USD",
	}
}
