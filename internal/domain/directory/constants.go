package directory

const (
	DefaultSeriesLength = 10
	MaxPositionLabel    = 20

	EmailDomain    = "company.com"
	DefaultManager = "John Smith"
	StatusActive   = "Active"

	DepartmentEngineering = "Engineering"
	DepartmentFinance     = "Finance"
	DepartmentSales       = "Sales"
	DepartmentOperations  = "Operations"
)
