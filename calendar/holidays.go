package calendar

// Bundled holiday dates, YYYY-MM-DD. These cover the range the bundled
// tooling works with; callers needing other years or markets should extend
// the lists.

var targetHolidayList = []string{
	// 2024
	"2024-01-01", "2024-03-29", "2024-04-01", "2024-05-01", "2024-12-25", "2024-12-26",
	// 2025
	"2025-01-01", "2025-04-18", "2025-04-21", "2025-05-01", "2025-12-25", "2025-12-26",
	// 2026
	"2026-01-01", "2026-04-03", "2026-04-06", "2026-05-01", "2026-12-25", "2026-12-26",
	// 2027
	"2027-01-01", "2027-03-26", "2027-03-29", "2027-05-01", "2027-12-25", "2027-12-26",
}

var usHolidayList = []string{
	// 2024
	"2024-01-01", "2024-01-15", "2024-02-19", "2024-05-27", "2024-06-19",
	"2024-07-04", "2024-09-02", "2024-10-14", "2024-11-11", "2024-11-28", "2024-12-25",
	// 2025
	"2025-01-01", "2025-01-20", "2025-02-17", "2025-05-26", "2025-06-19",
	"2025-07-04", "2025-09-01", "2025-10-13", "2025-11-11", "2025-11-27", "2025-12-25",
	// 2026
	"2026-01-01", "2026-01-19", "2026-02-16", "2026-05-25", "2026-06-19",
	"2026-07-03", "2026-09-07", "2026-10-12", "2026-11-11", "2026-11-26", "2026-12-25",
}

var koreaHolidayList = []string{
	// 2024
	"2024-01-01", "2024-02-09", "2024-02-12", "2024-03-01", "2024-04-10",
	"2024-05-01", "2024-05-06", "2024-05-15", "2024-06-06", "2024-08-15",
	"2024-09-16", "2024-09-17", "2024-09-18", "2024-10-01", "2024-10-03",
	"2024-10-09", "2024-12-25",
	// 2025
	"2025-01-01", "2025-01-27", "2025-01-28", "2025-01-29", "2025-01-30",
	"2025-03-03", "2025-05-01", "2025-05-05", "2025-05-06", "2025-06-06",
	"2025-08-15", "2025-10-03", "2025-10-06", "2025-10-07", "2025-10-08",
	"2025-10-09", "2025-12-25",
	// 2026
	"2026-01-01", "2026-02-16", "2026-02-17", "2026-02-18", "2026-03-02",
	"2026-05-01", "2026-05-05", "2026-05-25", "2026-06-08", "2026-08-17",
	"2026-09-24", "2026-09-25", "2026-10-05", "2026-10-09", "2026-12-25",
}
