package model

// Investor is one row of the fundraising target list, imported from a
// directory CSV export.
type Investor struct {
	FirmName      string
	Type          string // e.g. "VC", "PE"
	Location      string
	Website       string
	OfficeContact string
	Portfolio     string
	Focus         string
}
