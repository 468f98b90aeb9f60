package main

import (
	"time"

	"micro-automation-hub/internal/entity"
)

var automations = []entity.Automation{
	{Name: "Atttribute lookup by SKU", Summary: "Updates item attributes in Magelen based on SKU from NAV.", Owner: "Gen Merch", Status: "Stable", LastRunRelative: "3m ago", RunRate: "148 runs / wk"},
	{Name: "Item Coding Q&A", Summary: "Get answers to all your item coding questions. Pulls from the latest sharepoint documentation.", Owner: "Customer Success", Status: "Advisory", LastRunRelative: "11m ago", RunRate: "93 runs / wk"},
	{Name: "Invoice Exception Resolver", Summary: "GenAI agent triages failed invoices, drafts outreach, and updates ERP with resolution.", Owner: "Finance Ops", Status: "Pilot", LastRunRelative: "42m ago", RunRate: "37 runs / wk"},
}

var kpis = []entity.InsightKpi{
	{Title: "Automation runs", Value: "1,482", Delta: "+12%", Description: "vs. prior 7 days"},
	{Title: "Interventions avoided", Value: "286", Delta: "+6%", Description: "LLM handled without analyst escalation"},
	{Title: "Median run cost", Value: "$0.42", Delta: "-9%", Description: "Weighted across providers"},
}

var adoption = []entity.InsightAdoption{
	{Team: "Gen Merch", Metric: "94%", Detail: "Adopted at least one automation"},
	{Team: "Customer Success", Metric: "88%", Detail: "Weekly active analysts"},
	{Team: "Finance", Metric: "61%", Detail: "Playbook completion"},
}

var incidents = []entity.InsightIncident{
	{Label: "P0", Count: 0, Description: "Zero critical failures in rolling 30 days"},
	{Label: "P1", Count: 2, Description: "Schema drift (resolved), Provider latency (mitigated)"},
	{Label: "P2", Count: 9, Description: "Low impact warnings awaiting steward triage"},
}

var milestones = []entity.RoadmapMilestone{
	{Quarter: "Q4", Focus: "MARU Developer Portal", Detail: "A portal for developers to onboard, test, and deploy micro-automations.", Status: "In progress"},
	{Quarter: "Q4", Focus: "Idea Funnel: Flow Chart Builder", Detail: "Define automation logic visually with a drag-and-drop interface.", Status: "In design"},
	{Quarter: "Q1", Focus: "MCP Library", Detail: "Library of available MCP connectors for common enterprise systems.", Status: "Planned"},
}

var feedback = []entity.FeedbackItem{
	{Title: "Automatic prompt optimization", Votes: 24, State: "Accepted"},
	{Title: "JIRA ticket agent", Votes: 18, State: "Accepted"},
	{Title: "Integration with monday.com", Votes: 12, State: "Under review"},
}

var failureModes = []entity.FailureMode{
	{Path: "llm/latency", Title: "Latency spikes", Description: "Detection rules for elevated provider latency across regions.", Playbooks: 3},
	{Path: "prompt/drift", Title: "Prompt drift", Description: "Outputs deviate from acceptance tests; includes rollback checklist.", Playbooks: 4},
	{Path: "data/schema-drift", Title: "Schema drift", Description: "Source schema changes that break ingestion or transformation steps.", Playbooks: 2},
}

// activity is relative to the seed time so the feed always looks recent.
func activity(now time.Time) []entity.ActivityEntry {
	return []entity.ActivityEntry{
		{Actor: "Casey", Action: "Linked incident #483 to `llm/latency`", EventType: "INCIDENT_LINKED", Payload: map[string]interface{}{"path": "llm/latency", "incident": 483}, OccurredAt: now.Add(-2 * time.Hour)},
		{Actor: "Riya", Action: "Proposed new symptom: `incomplete payload`", EventType: "SYMPTOM_PROPOSED", Payload: map[string]interface{}{"symptom": "incomplete payload"}, OccurredAt: now.Add(-4 * time.Hour)},
		{Actor: "Morgan", Action: "Published remediation playbook for `prompt/drift`", EventType: "PLAYBOOK_PUBLISHED", Payload: map[string]interface{}{"path": "prompt/drift"}, OccurredAt: now.Add(-19 * time.Hour)},
	}
}
