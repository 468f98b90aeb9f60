package dto

type RoadmapMilestoneResponse struct {
	Quarter string `json:"quarter"`
	Focus   string `json:"focus"`
	Detail  string `json:"detail"`
	Status  string `json:"status"`
}

type RoadmapResponse struct {
	Milestones []*RoadmapMilestoneResponse `json:"milestones"`
	Feedback   []*FeedbackResponse         `json:"feedback"`
}
