// Package parser formats and highlights SQL for terminal display.
package parser

import (
	"regexp"
	"strings"

	"github.com/eduardofuncao/pgbridge/internal/styles"
)

// Clause-starting keywords, longest first so compound forms win.
var clauseKeywords = []string{
	"LEFT OUTER JOIN", "RIGHT OUTER JOIN", "FULL OUTER JOIN",
	"LEFT JOIN", "RIGHT JOIN", "INNER JOIN", "CROSS JOIN",
	"INSERT INTO", "DELETE FROM", "GROUP BY", "ORDER BY", "UNION ALL",
	"SELECT", "FROM", "WHERE", "HAVING", "LIMIT", "OFFSET",
	"UNION", "UPDATE", "VALUES", "SET", "RETURNING",
}

var highlightKeywords = []string{
	"SELECT", "FROM", "WHERE", "JOIN", "LEFT", "RIGHT", "INNER", "CROSS", "OUTER",
	"ON", "GROUP", "BY", "HAVING", "ORDER", "LIMIT", "OFFSET", "UNION", "ALL",
	"INSERT", "INTO", "UPDATE", "DELETE", "VALUES", "SET", "AND", "OR", "NOT",
	"IN", "EXISTS", "BETWEEN", "LIKE", "IS", "NULL", "DISTINCT", "AS",
	"BEGIN", "COMMIT", "ROLLBACK", "SAVEPOINT", "TRUNCATE", "RETURNING",
}

// FormatSQL breaks a one-line statement into one clause per line.
func FormatSQL(sql string) string {
	if sql == "" {
		return ""
	}

	formatted := sql
	for _, keyword := range clauseKeywords {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
		formatted = pattern.ReplaceAllStringFunc(formatted, func(match string) string {
			return "\n" + match + " "
		})
	}

	var lines []string
	for _, line := range strings.Split(formatted, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}

// HighlightSQL colors keywords and string literals for terminal output.
func HighlightSQL(sql string) string {
	highlighted := sql
	for _, keyword := range highlightKeywords {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
		highlighted = pattern.ReplaceAllStringFunc(highlighted, func(match string) string {
			return styles.SQLKeyword.Render(match)
		})
	}

	var result strings.Builder
	inString := false
	for _, char := range highlighted {
		switch {
		case char == '\'':
			result.WriteString(styles.SQLString.Render("'"))
			inString = !inString
		case inString:
			result.WriteString(styles.SQLString.Render(string(char)))
		default:
			result.WriteRune(char)
		}
	}
	return result.String()
}
