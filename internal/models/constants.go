package models

// DefaultTopExpenses is the number of entries returned by a top-expenses report
// when the caller does not choose one.
const DefaultTopExpenses = 5

// Categories used by the demo scenario
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities"
	CategorySalary        = "Salary"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
