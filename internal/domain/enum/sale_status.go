package enum

// SaleStatus represents the lifecycle state of a sale
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
	SaleStatusRefunded  SaleStatus = "refunded"
)

// Valid returns true if the status is one of the known statuses
func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusCompleted, SaleStatusCancelled, SaleStatusRefunded:
		return true
	}
	return false
}

func (s SaleStatus) String() string {
	return string(s)
}
