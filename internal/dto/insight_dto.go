package dto

type InsightKpiResponse struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Delta       string `json:"delta"`
	Description string `json:"description"`
}

type InsightAdoptionResponse struct {
	Team   string `json:"team"`
	Metric string `json:"metric"`
	Detail string `json:"detail"`
}

type InsightIncidentResponse struct {
	Label       string `json:"label"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}

type InsightsResponse struct {
	Kpis      []*InsightKpiResponse      `json:"kpis"`
	Adoption  []*InsightAdoptionResponse `json:"adoption"`
	Incidents []*InsightIncidentResponse `json:"incidents"`
}

type TeamMetricsResponse struct {
	Team       string `json:"team"`
	Acceptance string `json:"acceptance"`
	Adoption   string `json:"adoption"`
	Roi        string `json:"roi"`
}
