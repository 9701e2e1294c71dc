package dto

type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Link    string `json:"link"`
	Global  bool   `json:"global,omitempty"`
}

type EnrollUsersInput struct {
	UserIDs []string `json:"userIds"`
}

// EnrollmentResult reports how many enrollments a bulk call created.
type EnrollmentResult struct {
	Enrolled int `json:"enrolled"`
	Skipped  int `json:"skipped"`
}

type DashboardStats struct {
	Courses                int64 `json:"courses"`
	PublicCourses          int64 `json:"publicCourses"`
	Sections               int64 `json:"sections"`
	Modules                int64 `json:"modules"`
	Assignments            int64 `json:"assignments"`
	UngradedSubmissions    int64 `json:"ungradedSubmissions"`
	SubmissionsThisWeek    int64 `json:"submissionsThisWeek"`
	AssignmentsDueThisWeek int64 `json:"assignmentsDueThisWeek"`
}
