package permissionchecker

// Instructor permissions scoped per course.
const (
	PERMISSION_MODIFY_COURSE           = "modify-course"
	PERMISSION_MODIFY_SESSION          = "modify-session"
	PERMISSION_MODIFY_INSTRUCTOR       = "modify-instructor"
	PERMISSION_MODIFY_STUDENT          = "modify-student"
	PERMISSION_VIEW_SESSION            = "view-session"
	PERMISSION_SUBMIT_SESSION          = "submit-session"
	PERMISSION_VIEW_SESSION_RESULTS    = "view-session-results"
	PERMISSION_MODIFY_SESSION_COMMENTS = "modify-session-comments"
)
