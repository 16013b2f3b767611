// Package lookup resolves the numeric ids that TANSS records refer to into
// display names. A Cache belongs to a single client; entries are added as
// the client learns about them and are never evicted.
package lookup

import (
	"slices"
	"strconv"

	"github.com/maruel/natural"
)

// Kind names a resource whose ids can be resolved.
type Kind string

const (
	Companies            Kind = "companies"
	CompanyTypes         Kind = "company_types"
	Tickets              Kind = "tickets"
	TicketStates         Kind = "ticket_states"
	TicketTypes          Kind = "ticket_types"
	Departments          Kind = "departments"
	Employees            Kind = "employees"
	Contracts            Kind = "contracts"
	Phases               Kind = "phases"
	CostCenters          Kind = "cost_centers"
	OrderBys             Kind = "order_bys"
	Tags                 Kind = "tags"
	LinkTypes            Kind = "link_types"
	EmployeeCategories   Kind = "employee_categories"
	VacationTypes        Kind = "vacation_types"
	VacationAbsenceTypes Kind = "vacation_absence_types"
)

// AllKinds lists every supported kind.
var AllKinds = []Kind{
	Companies,
	CompanyTypes,
	Tickets,
	TicketStates,
	TicketTypes,
	Departments,
	Employees,
	Contracts,
	Phases,
	CostCenters,
	OrderBys,
	Tags,
	LinkTypes,
	EmployeeCategories,
	VacationTypes,
	VacationAbsenceTypes,
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !slices.Contains(AllKinds, k) {
		return "", ErrUnknownKind.Fmt(s)
	}

	return k, nil
}

// Entry is a single resolved id.
type Entry struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// Cache maps ids to names, one table per kind. It is not safe for
// concurrent use.
type Cache struct {
	tables map[Kind]map[int]string
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{
		tables: make(map[Kind]map[int]string),
	}
}

// Get returns the name stored for id.
func (c *Cache) Get(kind Kind, id int) (string, bool) {
	name, ok := c.tables[kind][id]

	return name, ok
}

// Put stores or replaces the name for id.
func (c *Cache) Put(kind Kind, id int, name string) {
	table, ok := c.tables[kind]
	if !ok {
		table = make(map[int]string)
		c.tables[kind] = table
	}

	table[id] = name
}

// Name returns the name stored for id, or "#<id>" when it is not known.
func (c *Cache) Name(kind Kind, id int) string {
	if name, ok := c.Get(kind, id); ok {
		return name
	}

	return "#" + strconv.Itoa(id)
}

// Entries returns the entries of a kind in natural name order, ties broken
// by id.
func (c *Cache) Entries(kind Kind) []Entry {
	table := c.tables[kind]

	entries := make([]Entry, 0, len(table))
	for id, name := range table {
		entries = append(entries, Entry{ID: id, Name: name})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		default:
			return a.ID - b.ID
		}
	})

	return entries
}

// Kinds returns the kinds that hold at least one entry, in the order of
// AllKinds.
func (c *Cache) Kinds() []Kind {
	var kinds []Kind

	for _, k := range AllKinds {
		if len(c.tables[k]) > 0 {
			kinds = append(kinds, k)
		}
	}

	return kinds
}

// Len returns the number of entries of a kind.
func (c *Cache) Len(kind Kind) int {
	return len(c.tables[kind])
}
