// Package catalog holds the fixed domain enumerations: provinces, objects
// of expenditure, and budget codes. These are the only valid values for the
// enum-typed row fields, and their order defines display order everywhere
// (tables, reports, exports).
package catalog

import "strings"

// Catalog is an ordered, immutable list of valid values.
type Catalog struct {
	values []string
	index  map[string]int
}

// New builds a Catalog from the given values, preserving order.
func New(values ...string) Catalog {
	idx := make(map[string]int, len(values))
	for i, v := range values {
		idx[v] = i
	}
	return Catalog{values: values, index: idx}
}

// Contains reports whether v is a member of the catalog.
func (c Catalog) Contains(v string) bool {
	_, ok := c.index[v]
	return ok
}

// Index returns the display position of v, or -1 when absent.
func (c Catalog) Index(v string) int {
	i, ok := c.index[v]
	if !ok {
		return -1
	}
	return i
}

// Values returns the catalog values in display order. The returned slice is
// a copy; callers may not mutate the catalog.
func (c Catalog) Values() []string {
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

// Len returns the number of values.
func (c Catalog) Len() int { return len(c.values) }

// VerifySeparatorFree reports whether no catalog value contains sep.
// Exported documents join the (object, province, code) triple for display;
// this makes the no-separator assumption checkable instead of assumed.
func (c Catalog) VerifySeparatorFree(sep string) bool {
	for _, v := range c.values {
		if strings.Contains(v, sep) {
			return false
		}
	}
	return true
}

// Provinces in display order.
var Provinces = New(
	"Regional Office",
	"Bukidnon",
	"Camiguin",
	"Lanao del Norte",
	"Misamis Occidental",
	"Misamis Oriental",
)

// ObjectsOfExpenditure in display order.
var ObjectsOfExpenditure = New(
	"Travelling Expenses",
	"Travelling Expense - Foreign",
	"Training Expenses",
	"Office Supplies Expenses",
	"Gasoline, Oil and Lubricants Expense",
	"Survey Expense",
	"Other Supplies Expenses",
	"Water Consumption",
	"Electric Consumption",
	"Postage and Deliveries",
	"Telephone Expenses - Mobile",
	"Telephone Expenses - Landline",
	"Internet Expenses",
	"Extraordinary and Miscellaneous Expenses",
	"Auditing Expenses",
	"Janitorial Services",
	"Security Services",
	"Other General Services",
	"RM - Office Equipment",
	"RM - ICT Equipment",
	"RM - Transportation Equip - Motor Vehicle",
	"RM - Other Transportation Equipment",
	"RM - Furnitures and Fixtures",
	"RM - Leased Assets Improvements",
	"Fidelity Bond Premium",
	"Insurance Expense - Vehicle/OE",
	"Advertising Expenses",
	"Printing and Publication Expenses",
	"Representation Expenses",
	"Transportation and Delivery Expenses",
	"Rents -Building and Structures",
	"Rents -Motor Vehicles",
	"Rents -Equipments",
	"Rents -Living Quarters",
	"Operating Lease",
	"Financial Lease",
	"Subscription Expenses",
	"Other Maintenance and Operating Expenses",
)

// BudgetCodes in display order.
var BudgetCodes = New(
	"A.I.a - General Administration and Support",
	"A.III.c.1- Processing and Archiving of Civil Registry Documents",
	"A.III.c.2- Issuance of Civil Registration Certifications / Authentications of Documents",
	"A.lll.a.1 Conduct of Censuses and Surveys on the Agriculture, Fisheries, Industry and Services Sector",
	"A.lll.a.2 Conduct of Household-Based Censuses and Surveys",
	"A.III.b.1 Statistical Planning , Programming, Budgetting, Monitoring and Evaluation",
	"A.III.b.2 Development and Improvement of Statistical Framework and Standards",
	"A.lll.b.3 Coordination of Statistical Activities at the National and local Levels",
	"CPBI",
	"ASPBI",
	"APIS",
	"NMS",
	"PEENRA",
	"FIES",
	"NDHS",
	"CBMS",
	"STEP",
	"OWS-ISLE",
)
