// Package querysql builds the parameterized SQL used to search the catalog.
//
// CRITICAL: user values are NEVER interpolated into SQL text. Every
// predicate is emitted with a ? placeholder and the value goes to Args.
package querysql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // registers the sqlite3 dialect
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/roach88/bookvault/internal/book"
)

// Table and column names of the catalog schema.
const (
	Table     = "book"
	ColID     = "id"
	ColTitle  = "title"
	ColAuthor = "author"
	ColQty    = "qty"
)

const dialect = "sqlite3"

// Warnings attached to a Compiled query when a criterion could not be parsed.
const (
	WarnInvalidID  = "ID invalid. Make sure it's a number."
	WarnInvalidQty = "Quantity invalid. Make sure it's a number."
)

// alwaysTrue is the base predicate every search starts from, so each
// criterion is appended as one more conjunct.
var alwaysTrue = goqu.L("1 = 1")

// neverTrue stands in for an id criterion that is not a number: no book
// id can equal it.
var neverTrue = goqu.L("1 = 0")

// Columns lists the book columns in scan order.
var Columns = []any{ColID, ColTitle, ColAuthor, ColQty}

// Compiled is a ready-to-execute query.
type Compiled struct {
	SQL  string
	Args []any

	// Warnings lists numeric criteria that could not be parsed.
	Warnings []string
}

// Compile converts search criteria into a SELECT over the book table.
//
// Semantics per field:
//   - id: strict equality on the parsed integer
//   - title, author: substring match (LIKE with % on both sides)
//   - qty: equality on the parsed integer
//
// Neither bad number fails the search; each adds a warning. An id that does
// not parse matches no book. A qty that does not parse is skipped and the
// remaining criteria still apply. Results are always ordered by id ascending.
func Compile(c book.Criteria) (Compiled, error) {
	preds, warnings := predicates(c)

	ds := goqu.Dialect(dialect).
		From(Table).
		Select(Columns...).
		Where(preds...).
		Order(goqu.C(ColID).Asc()).
		Prepared(true)

	sql, args, err := ds.ToSQL()
	if err != nil {
		return Compiled{}, fmt.Errorf("compile search: %w", err)
	}

	return Compiled{SQL: sql, Args: args, Warnings: warnings}, nil
}

// predicates returns the WHERE conjuncts for c, always starting with the
// always-true literal.
func predicates(c book.Criteria) ([]exp.Expression, []string) {
	preds := []exp.Expression{alwaysTrue}
	var warnings []string

	if c.ID != "" {
		if id, err := parseInt(c.ID); err == nil {
			preds = append(preds, goqu.C(ColID).Eq(id))
		} else {
			preds = append(preds, neverTrue)
			warnings = append(warnings, WarnInvalidID)
		}
	}

	if c.Title != "" {
		preds = append(preds, goqu.C(ColTitle).Like(contains(c.Title)))
	}

	if c.Author != "" {
		preds = append(preds, goqu.C(ColAuthor).Like(contains(c.Author)))
	}

	if c.Qty != "" {
		if qty, err := parseInt(c.Qty); err == nil {
			preds = append(preds, goqu.C(ColQty).Eq(qty))
		} else {
			warnings = append(warnings, WarnInvalidQty)
		}
	}

	return preds, warnings
}

// ListAll returns the query listing every book by ascending id.
func ListAll() (Compiled, error) {
	sql, args, err := goqu.Dialect(dialect).
		From(Table).
		Select(Columns...).
		Order(goqu.C(ColID).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return Compiled{}, fmt.Errorf("compile list: %w", err)
	}
	return Compiled{SQL: sql, Args: args}, nil
}

// MaxID returns the query selecting the largest id (NULL on an empty table).
func MaxID() (Compiled, error) {
	sql, args, err := goqu.Dialect(dialect).
		From(Table).
		Select(goqu.MAX(ColID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return Compiled{}, fmt.Errorf("compile max id: %w", err)
	}
	return Compiled{SQL: sql, Args: args}, nil
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// contains wraps s for a substring LIKE match.
func contains(s string) string {
	return "%" + s + "%"
}
