package course

import (
	"testing"

	courseTypes "github.com/coursedesk/course-backend/pkg/course/types"
	pc "github.com/coursedesk/course-backend/pkg/permission-checker"
)

func TestComputeSessionPrivileges(t *testing.T) {
	instructor := &courseTypes.Instructor{
		UserID:   "inst1",
		CourseID: "CS101",
		Email:    "inst1@uni.edu",
		Permissions: []string{
			pc.PERMISSION_MODIFY_SESSION,
			pc.PERMISSION_VIEW_SESSION,
			pc.PERMISSION_VIEW_SESSION_RESULTS,
		},
	}

	privileges := ComputeSessionPrivileges(instructor, "Midterm Review")

	if privileges.SessionName != "Midterm Review" {
		t.Errorf("unexpected session name: %q", privileges.SessionName)
	}
	if !privileges.CanModifySession || !privileges.CanViewSession || !privileges.CanViewSessionResults {
		t.Errorf("granted permissions missing: %+v", privileges)
	}
	if privileges.CanSubmitSession || privileges.CanModifySessionComments {
		t.Errorf("ungranted permissions present: %+v", privileges)
	}
}
