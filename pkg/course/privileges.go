package course

import (
	courseTypes "github.com/coursedesk/course-backend/pkg/course/types"
	pc "github.com/coursedesk/course-backend/pkg/permission-checker"
)

// ComputeSessionPrivileges derives what the instructor may do with the
// named session from their per-course permission set.
func ComputeSessionPrivileges(instructor *courseTypes.Instructor, sessionName string) courseTypes.SessionPrivileges {
	return courseTypes.SessionPrivileges{
		SessionName:              sessionName,
		CanModifySession:         instructor.HasPermission(pc.PERMISSION_MODIFY_SESSION),
		CanViewSession:           instructor.HasPermission(pc.PERMISSION_VIEW_SESSION),
		CanSubmitSession:         instructor.HasPermission(pc.PERMISSION_SUBMIT_SESSION),
		CanViewSessionResults:    instructor.HasPermission(pc.PERMISSION_VIEW_SESSION_RESULTS),
		CanModifySessionComments: instructor.HasPermission(pc.PERMISSION_MODIFY_SESSION_COMMENTS),
	}
}
