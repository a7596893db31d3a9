package dashboard

// StatCard is a static header metric. Cards are fixed at start-up.
type StatCard struct {
	Name   string
	Value  string
	Change string
	Icon   string
}

// Metric is one row of the performance panel.
type Metric struct {
	Name    string
	Percent int
}

// Activity is one entry of the recent activity panel.
type Activity struct {
	Label string
	When  string
}

// Informational panels shown under the active tab's content.
var (
	TabRecentActivity = []string{"New user registration", "System update completed", "Security scan passed"}
	TabQuickActions   = []string{"View reports", "Manage settings", "Contact support"}
)

// Bottom row panels.
var (
	ActivityFeed = []Activity{
		{Label: "Activity #1", When: "2 minutes ago"},
		{Label: "Activity #2", When: "2 minutes ago"},
		{Label: "Activity #3", When: "2 minutes ago"},
		{Label: "Activity #4", When: "2 minutes ago"},
	}
	PerformanceMetrics = []Metric{
		{Name: "CPU Usage", Percent: 64},
		{Name: "Memory", Percent: 42},
	}
)

// EmptyContent is shown in the content panel when no tab is active.
const EmptyContent = "No content available"
