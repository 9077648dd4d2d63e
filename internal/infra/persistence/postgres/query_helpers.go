package postgres

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a "contains" pattern for ILIKE with wildcards in term escaped.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(term)) + "%"
}

func orderExpr(column string, descending bool) string {
	if descending {
		return column + " DESC"
	}

	return column + " ASC"
}
