package request

// SalesReportRequest represents report query parameters. Dates are
// calendar days in 2006-01-02 form.
type SalesReportRequest struct {
	Period    string `form:"period" binding:"required"`
	Reference string `form:"reference"`
	Start     string `form:"start"`
	End       string `form:"end"`
}
