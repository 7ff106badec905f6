package core

type (
	// ReportParams identifies one reporting period plus the externally
	// supplied beginning cash-on-hand balance.
	ReportParams struct {
		Year            int        `json:"year"`
		Period          string     `json:"period"`
		PeriodType      PeriodType `json:"periodType"`
		CashOnHandStart Money      `json:"cashOnHandStart"`
	}

	// ScheduleAItem is one itemized contribution. CycleToDate is the payer's
	// cumulative cycle total through this contribution, the figure that
	// justifies itemization.
	ScheduleAItem struct {
		Contribution
		CycleToDate Money `json:"cycleToDate"`
	}

	// ScheduleBItem is one itemized disbursement.
	ScheduleBItem struct {
		Disbursement
	}

	Summary struct {
		TotalReceipts      Money `json:"totalReceipts"`
		ItemizedReceipts   Money `json:"itemizedReceipts"`
		UnitemizedReceipts Money `json:"unitemizedReceipts"`
		TotalDisbursements Money `json:"totalDisbursements"`
		CashOnHandStart    Money `json:"cashOnHandStart"`
		CashOnHandEnd      Money `json:"cashOnHandEnd"`
		ScheduleACount     int   `json:"scheduleACount"`
		ScheduleBCount     int   `json:"scheduleBCount"`
		ContributionCount  int   `json:"contributionCount"`
	}

	// Report is the assembled output for one period. Line items are ordered
	// by date ascending (ties by record id), so identical data always yields
	// identical output.
	Report struct {
		Year       int             `json:"year"`
		Period     string          `json:"period"`
		PeriodType PeriodType      `json:"periodType"`
		StartDate  Date            `json:"startDate"`
		EndDate    Date            `json:"endDate"`
		ScheduleA  []ScheduleAItem `json:"scheduleA"`
		ScheduleB  []ScheduleBItem `json:"scheduleB"`
		Summary    Summary         `json:"summary"`
		Warnings   []string        `json:"warnings"`
	}
)
