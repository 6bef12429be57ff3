package dto

type RecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}
