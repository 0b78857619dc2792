package routes

const (
	Health = "/api/health"

	AuthRegister       = "/api/auth/register"
	AuthLogin          = "/api/auth/login"
	AuthMe             = "/api/auth/me"
	AuthChangePassword = "/api/auth/change-password"

	Users           = "/api/users"
	User            = "/api/users/{id}"
	UserPreferences = "/api/users/{id}/preferences"

	WasteRecords      = "/api/waste-records"
	WasteRecordExport = "/api/waste-records/export"

	Collections         = "/api/collections"
	CollectionsUpcoming = "/api/collections/upcoming"
	Collection          = "/api/collections/{id}"

	Reminders = "/api/reminders"
	Reminder  = "/api/reminders/{id}"

	DisposalLocations       = "/api/disposal-locations"
	DisposalLocationsNearby = "/api/disposal-locations/nearby"
	DisposalLocation        = "/api/disposal-locations/{id}"

	RecyclingTips        = "/api/recycling-tips"
	EducationalResources = "/api/educational-resources"

	DashboardSummary = "/api/dashboard-summary/{userId}"

	WasteStatistics    = "/api/waste-statistics"
	WasteStatisticsRun = "/api/waste-statistics/run"
)
