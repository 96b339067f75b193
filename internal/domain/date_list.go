package domain

// DateEntry is a single named date inside a DateList.
type DateEntry struct {
	Name      string
	Date      CalendarDate
	DateClass int
}

// DateList groups named dates under one logical unit (Git-friendly YAML).
type DateList struct {
	Name    string
	Entries []DateEntry
}

// DateListRef is a lightweight reference to a date-list file on disk.
type DateListRef struct {
	Name string
	Path string
}

// ImperialDate builds the value object for the entry.
func (e DateEntry) ImperialDate() (*ImperialDate, error) {
	return New(WithDate(e.Date), WithDateClass(e.DateClass))
}
