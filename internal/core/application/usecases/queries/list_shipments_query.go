package queries

import (
	"errors"
	"strings"

	"globaledge/internal/core/domain/model/shipment"
	"globaledge/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

const (
	listDefaultLimit = 20
	listMaxLimit     = 100
)

// ListShipmentsQuery is the back-office listing with filters and pagination.
// Pagination inputs are clamped rather than rejected: page floors at 1,
// limit defaults to 20 and is capped at 100.
type ListShipmentsQuery struct {
	status *shipment.Status
	search string
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates an admin listing query.
// An empty status means no status filter; search matches tracking number,
// recipient email, and route endpoints case-insensitively.
func NewListShipmentsQuery(rawStatus, search string, page, limit int) (ListShipmentsQuery, error) {
	listQuery := ListShipmentsQuery{
		search: strings.TrimSpace(search),
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(rawStatus) != "" {
		status, err := shipment.NormalizeStatus(rawStatus)
		if err != nil {
			return ListShipmentsQuery{}, err
		}
		listQuery.status = &status
	}

	if listQuery.page < 1 {
		listQuery.page = 1
	}
	if listQuery.limit < 1 {
		listQuery.limit = listDefaultLimit
	}
	if listQuery.limit > listMaxLimit {
		listQuery.limit = listMaxLimit
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListShipmentsQueryIsNotConstructed if validation fails.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Status returns the status filter, nil when unfiltered.
func (q ListShipmentsQuery) Status() *shipment.Status {
	return q.status
}

// Search returns the trimmed free-text filter, empty when unfiltered.
func (q ListShipmentsQuery) Search() string {
	return q.search
}

// Page returns the 1-based page number.
func (q ListShipmentsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListShipmentsQuery) Limit() int {
	return q.limit
}

// Offset returns the row offset implied by page and limit.
func (q ListShipmentsQuery) Offset() int {
	return (q.page - 1) * q.limit
}

// ListShipmentsQueryResponse carries one page of results plus the total
// match count for pagination controls.
type ListShipmentsQueryResponse struct {
	Items []ShipmentView
	Total int64
	Page  int
	Limit int
}
