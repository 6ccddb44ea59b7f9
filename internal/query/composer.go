package query

// DefaultPage is the page number substituted for missing or invalid values.
const DefaultPage = 1

// Statement is a ready-to-execute SQL text with its positional arguments,
// already rebound to PostgreSQL '$n' ordinals.
type Statement struct {
	SQL  string
	Args []interface{}
}

// PageRequest carries normalized pagination parameters.
type PageRequest struct {
	Page  int
	Limit int
}

// NormalizePage clamps raw pagination values: non-positive or unparseable
// inputs fall back to page 1 and the endpoint's default limit.
func NormalizePage(page, limit, defaultLimit int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset returns the row offset for the request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// orderClause implements the ordering policy: when the predicate set narrows
// the time range the normalized creation date orders the page; otherwise the
// cheap covered "id DESC" scan stands in for recency.
func orderClause(b *Builder) string {
	if b.TimeConstrained() {
		return " ORDER BY " + LegacyDateExpr("shipment_creation_date") + " DESC"
	}
	return " ORDER BY id DESC"
}

// Compose renders the paired count and page statements for one predicate set
// against the shipments table. Both statements share the identical WHERE
// clause and arguments so the reported total always agrees with the rows.
func Compose(columns string, b *Builder, page PageRequest) (count Statement, data Statement) {
	where, args := b.Clause()

	countSQL := "SELECT COUNT(*) FROM shipments" + where
	count = Statement{
		SQL:  Rebind(countSQL),
		Args: args,
	}

	dataSQL := "SELECT " + columns + " FROM shipments" + where +
		orderClause(b) + " LIMIT ? OFFSET ?"
	dataArgs := make([]interface{}, 0, len(args)+2)
	dataArgs = append(dataArgs, args...)
	dataArgs = append(dataArgs, page.Limit, page.Offset())
	data = Statement{
		SQL:  Rebind(dataSQL),
		Args: dataArgs,
	}
	return count, data
}

// ComposeLimited renders a single capped statement without pagination, for
// the fixed-size listing endpoints.
func ComposeLimited(columns string, b *Builder, limit int) Statement {
	where, args := b.Clause()
	sql := "SELECT " + columns + " FROM shipments" + where +
		orderClause(b) + " LIMIT ?"
	out := make([]interface{}, 0, len(args)+1)
	out = append(out, args...)
	out = append(out, limit)
	return Statement{SQL: Rebind(sql), Args: out}
}
