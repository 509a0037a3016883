package payslip

import "errors"

// Payslip domain errors
var (
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrPayslipExists        = errors.New("payslip for this period already exists")
	ErrUnsupportedPayType   = errors.New("unsupported pay period type")
	ErrPayslipAlreadyPaid   = errors.New("payslip already paid, cannot modify")
	ErrCannotDeleteNonDraft = errors.New("only draft payslips can be deleted")
)
