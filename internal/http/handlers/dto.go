package handlers

import (
	"time"

	"github.com/rogerio-castellano/storefront-tracker/internal/catalog"
	"github.com/rogerio-castellano/storefront-tracker/internal/models"
	"github.com/rogerio-castellano/storefront-tracker/internal/session"
)

type ErrorResponse struct {
	Error string `json:"error" example:"dashboard is not authenticated"`
}

type ValidationErrorResponse struct {
	Errors []ValidationError `json:"errors"`
}

type ProductResponse struct {
	ID       string  `json:"id" example:"e1"`
	Title    string  `json:"title" example:"Wireless Mouse"`
	Details  string  `json:"details"`
	Type     string  `json:"type" example:"Electronics"`
	Price    string  `json:"price" example:"Rs. 1,200"`
	Amount   string  `json:"amount" example:"1200"`
	Stars    float64 `json:"stars" example:"4.5"`
	Rates    int     `json:"rates" example:"120"`
	ImageSrc string  `json:"imageSrc"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Title:    p.Title,
		Details:  p.Details,
		Type:     p.Type,
		Price:    p.Price.Display,
		Amount:   p.Price.Amount.String(),
		Stars:    p.Stars,
		Rates:    p.Rates,
		ImageSrc: p.ImageSrc,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

type SelectionResponse struct {
	Category string `json:"category" example:"All"`
	Sort     string `json:"sort" example:"price"`
	Order    string `json:"order" example:"asc"`
	Valid    bool   `json:"valid"`
}

func toSelectionResponse(sel catalog.Selection) SelectionResponse {
	return SelectionResponse{
		Category: sel.Category,
		Sort:     string(sel.Field),
		Order:    string(sel.Order),
		Valid:    sel.Field.Valid() && sel.Order.Valid(),
	}
}

type CatalogResponse struct {
	Selection SelectionResponse `json:"selection"`
	Count     int               `json:"count"`
	Products  []ProductResponse `json:"products"`
}

type CategoriesResponse struct {
	// All is the fixed category list, Options is what the picker shows.
	All     []string `json:"all"`
	Present []string `json:"present"`
	Options []string `json:"options"`
}

type SummaryResponse struct {
	TotalProducts int    `json:"total_products" example:"18"`
	Categories    int    `json:"categories" example:"5"`
	TotalValue    string `json:"total_value" example:"Rs. 123,450"`
	Amount        string `json:"total_amount" example:"123450"`
}

func toSummaryResponse(s catalog.Summary) SummaryResponse {
	return SummaryResponse{
		TotalProducts: s.TotalProducts,
		Categories:    s.Categories,
		TotalValue:    s.TotalValue.Display,
		Amount:        s.TotalValue.Amount.String(),
	}
}

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"admin123"`
}

type AlertsFeed struct {
	Present   bool                 `json:"present"`
	UpdatedAt *time.Time           `json:"updated_at,omitempty"`
	Data      []models.AlertRecord `json:"data"`
}

type InsightsFeed struct {
	Present   bool                     `json:"present"`
	UpdatedAt *time.Time               `json:"updated_at,omitempty"`
	Data      *models.InsightsSnapshot `json:"data,omitempty"`
}

type AnalysisFeed struct {
	Present   bool                  `json:"present"`
	UpdatedAt *time.Time            `json:"updated_at,omitempty"`
	ProductID string                `json:"product_id,omitempty"`
	Data      *models.PriceAnalysis `json:"data,omitempty"`
}

type DashboardResponse struct {
	State           string       `json:"state" example:"authenticated"`
	IsAuthenticated bool         `json:"is_authenticated"`
	LoginError      string       `json:"login_error,omitempty" example:"Invalid credentials"`
	Alerts          AlertsFeed   `json:"alerts"`
	Insights        InsightsFeed `json:"insights"`
	Analysis        AnalysisFeed `json:"analysis"`
}

func toDashboardResponse(v session.View) DashboardResponse {
	resp := DashboardResponse{
		State:           v.State.String(),
		IsAuthenticated: v.IsAuthenticated,
		LoginError:      v.LoginError,
		Alerts: AlertsFeed{
			Present:   v.Alerts.Present,
			UpdatedAt: v.Alerts.UpdatedAt,
			Data:      v.Alerts.Data,
		},
		Insights: InsightsFeed{
			Present:   v.Insights.Present,
			UpdatedAt: v.Insights.UpdatedAt,
		},
		Analysis: AnalysisFeed{
			Present:   v.Analysis.Present,
			UpdatedAt: v.Analysis.UpdatedAt,
			ProductID: v.AnalysisProductID,
		},
	}
	if resp.Alerts.Data == nil {
		resp.Alerts.Data = []models.AlertRecord{}
	}
	if v.Insights.Present {
		resp.Insights.Data = &v.Insights.Data
	}
	if v.Analysis.Present {
		resp.Analysis.Data = &v.Analysis.Data
	}
	return resp
}
