package models

// BinCount is one entry of a distribution report: the number of items in a
// bin, partitioned into due and not-due. Count() == CountDue + CountNotDue
// always holds.
type BinCount struct {
	Bin         int `json:"bin"`
	CountDue    int `json:"count_due"`
	CountNotDue int `json:"count_not_due"`
}

func (b BinCount) Count() int {
	return b.CountDue + b.CountNotDue
}

// BinDistribution is the full ordered 1..maxBins report for one user and
// language. Empty bins are present with zero counts, never omitted.
type BinDistribution []BinCount
