package response

import (
	"errors"
	"net/http"

	"github.com/workflowhq/workforce-backend-go/internal/domain/auth"
	"github.com/workflowhq/workforce-backend-go/internal/domain/candidate"
	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/domain/goal"
	"github.com/workflowhq/workforce-backend-go/internal/domain/leave"
	"github.com/workflowhq/workforce-backend-go/internal/domain/notification"
	"github.com/workflowhq/workforce-backend-go/internal/domain/payslip"
	"github.com/workflowhq/workforce-backend-go/internal/domain/shift"
	"github.com/workflowhq/workforce-backend-go/internal/domain/timesheet"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or malformed token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, employee.ErrWageNotConfigured):
		BadRequest(w, "Employee wage information not found", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftOverlap):
		Conflict(w, "Shift overlaps with an existing shift")
	case errors.Is(err, shift.ErrNotShiftOwner):
		Forbidden(w, "You can only modify your own shift")
	case errors.Is(err, shift.ErrPastShift):
		BadRequest(w, "Cannot open a past shift", nil)
	case errors.Is(err, shift.ErrShiftNotOpen):
		BadRequest(w, "Shift is not open for claiming", nil)
	case errors.Is(err, shift.ErrOwnShiftClaim):
		BadRequest(w, "Cannot claim your own shift", nil)
	case errors.Is(err, shift.ErrRequestPending):
		Conflict(w, "Shift already has a pending claim request")
	case errors.Is(err, shift.ErrNoPendingRequest):
		BadRequest(w, "Shift has no pending claim request", nil)
	case errors.Is(err, shift.ErrShiftAlreadyClaimed):
		Conflict(w, "Shift already transferred")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timesheet.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, timesheet.ErrNotClockedIn):
		BadRequest(w, "No open clock-in session", nil)
	case errors.Is(err, timesheet.ErrClockOutBeforeIn):
		BadRequest(w, "Clock-out must be after clock-in", nil)

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrPayslipExists):
		Conflict(w, "Payslip for this period already exists")
	case errors.Is(err, payslip.ErrUnsupportedPayType):
		BadRequest(w, "Unsupported pay period type", nil)
	case errors.Is(err, payslip.ErrPayslipAlreadyPaid):
		Conflict(w, "Payslip already paid, cannot modify")
	case errors.Is(err, payslip.ErrCannotDeleteNonDraft):
		Conflict(w, "Only draft payslips can be deleted")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrNotRequestManager):
		Forbidden(w, "Only the assigned manager can decide this request")

	// Goal domain errors
	case errors.Is(err, goal.ErrGoalNotFound):
		NotFound(w, "Goal not found")
	case errors.Is(err, goal.ErrModuleNotFound):
		NotFound(w, "Goal module not found")
	case errors.Is(err, goal.ErrNotGoalAssignee):
		Forbidden(w, "Only the assigned employee can update this goal")

	// Candidate domain errors
	case errors.Is(err, candidate.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, candidate.ErrCandidateExists):
		Conflict(w, "Candidate email already registered")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotReceiver):
		Forbidden(w, "Notification belongs to another employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
