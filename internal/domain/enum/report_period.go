package enum

// ReportPeriod selects how a sales report resolves its date range
type ReportPeriod string

const (
	ReportPeriodDaily   ReportPeriod = "daily"
	ReportPeriodWeekly  ReportPeriod = "weekly"
	ReportPeriodMonthly ReportPeriod = "monthly"
	ReportPeriodYearly  ReportPeriod = "yearly"
	ReportPeriodCustom  ReportPeriod = "custom"
)

func (p ReportPeriod) String() string {
	return string(p)
}

// Valid reports whether the period is one of the known values
func (p ReportPeriod) Valid() bool {
	switch p {
	case ReportPeriodDaily, ReportPeriodWeekly, ReportPeriodMonthly,
		ReportPeriodYearly, ReportPeriodCustom:
		return true
	}
	return false
}

// ReportAnchor selects the reference point for week/month/year ranges.
// The original behavior anchored these to the wall clock regardless of the
// user-selected date; "reference" anchors them to the selected date instead.
type ReportAnchor string

const (
	ReportAnchorNow       ReportAnchor = "now"
	ReportAnchorReference ReportAnchor = "reference"
)
