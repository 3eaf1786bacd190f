package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ScrapeReportMailData struct {
	Success       bool     `json:"success"`
	ShiftsScraped int      `json:"shiftsScraped"`
	ShiftsCreated int      `json:"shiftsCreated"`
	ShiftsUpdated int      `json:"shiftsUpdated"`
	Errors        []string `json:"errors"`
	Timestamp     string   `json:"timestamp"`
}
