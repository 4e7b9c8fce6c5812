package db

import (
	"fmt"

	"github.com/lib/pq"
)

// Platform hands dialect-level SQL building to the higher layers.
type Platform struct {
	adapter *Adapter
}

// Platform is the factory hook handing a dialect helper to platform code.
func (a *Adapter) Platform() *Platform {
	return &Platform{adapter: a}
}

// ModifyLimitQuery appends LIMIT and then OFFSET clauses. Negative values
// mean the clause is absent. Integer typing keeps non-numeric input out of
// the statement.
func (p *Platform) ModifyLimitQuery(sql string, limit, offset int) string {
	if limit >= 0 {
		sql += fmt.Sprintf(" LIMIT %d", limit)
	}
	if offset >= 0 {
		sql += fmt.Sprintf(" OFFSET %d", offset)
	}
	return sql
}

func (p *Platform) QuoteIdentifier(ident string) string {
	return p.adapter.QuoteIdentifier(ident)
}

func (p *Platform) QuoteString(s string) string {
	return p.adapter.QuoteString(s)
}

// SequenceCurrValSQL builds the current-value lookup for a named sequence.
func (p *Platform) SequenceCurrValSQL(sequence string) string {
	return "SELECT CURRVAL(" + pq.QuoteLiteral(sequence) + ")"
}

// SequenceNextValSQL builds the next-value lookup for a named sequence.
func (p *Platform) SequenceNextValSQL(sequence string) string {
	return "SELECT NEXTVAL(" + pq.QuoteLiteral(sequence) + ")"
}
