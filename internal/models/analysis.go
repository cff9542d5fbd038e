package models

// AlertRecord is one significant price change reported by the analysis service.
type AlertRecord struct {
	ProductID     string  `json:"product_id"`
	CurrentPrice  float64 `json:"current_price"`
	PreviousPrice float64 `json:"previous_price"`
	ChangePercent float64 `json:"change_percent"`
	AlertType     string  `json:"alert_type,omitempty"`
	Timestamp     string  `json:"timestamp,omitempty"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// InsightsSnapshot summarizes the market as seen by the analysis service.
type InsightsSnapshot struct {
	TotalProducts int         `json:"total_products"`
	MarketTrend   string      `json:"market_trend"`
	Categories    []string    `json:"categories"`
	PriceRange    *PriceRange `json:"price_range,omitempty"`
	LastUpdated   string      `json:"last_updated,omitempty"`
}

// PriceAnalysis is the per-product trend report. LLMInsights is optional
// free text.
type PriceAnalysis struct {
	ProductID            string   `json:"product_id,omitempty"`
	CurrentPrice         float64  `json:"current_price"`
	PreviousPrice        *float64 `json:"previous_price,omitempty"`
	PriceChange          float64  `json:"price_change"`
	PriceChangePercent   *float64 `json:"price_change_percent,omitempty"`
	Trend                string   `json:"trend"`
	Volatility           *float64 `json:"volatility,omitempty"`
	PredictedPrice       float64  `json:"predicted_price"`
	PredictionConfidence *float64 `json:"prediction_confidence,omitempty"`
	DataPoints           int      `json:"data_points,omitempty"`
	LLMInsights          string   `json:"llm_insights,omitempty"`
}
