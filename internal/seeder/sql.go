package seeder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// validIdentifier validates table and column names before they are written unquoted
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func isValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// QuoteString wraps s in single quotes, doubling any embedded single quote.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// UnquoteString reverses QuoteString.
func UnquoteString(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '\'' || lit[len(lit)-1] != '\'' {
		return "", fmt.Errorf("not a quoted string literal: %s", lit)
	}

	body := lit[1 : len(lit)-1]
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\'' {
			if i+1 >= len(body) || body[i+1] != '\'' {
				return "", fmt.Errorf("unescaped quote at offset %d in %s", i+1, lit)
			}
			i++
		}
		b.WriteByte(body[i])
	}
	return b.String(), nil
}

// FormatValue renders a Go value as a SQL literal.
func FormatValue(val interface{}) string {
	if val == nil {
		return "NULL"
	}
	switch v := val.(type) {
	case string:
		return QuoteString(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case Score:
		return formatScore(float64(v))
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case Date:
		return QuoteString(time.Time(v).Format("2006-01-02"))
	case time.Time:
		return QuoteString(v.Format("2006-01-02 15:04:05"))
	case bool:
		if v {
			return "1"
		}
		return "0"
	default:
		return QuoteString(fmt.Sprintf("%v", v))
	}
}

func formatScore(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// InsertStatement renders a single-row INSERT terminated by a semicolon.
func InsertStatement(table string, columns []string, values []interface{}) (string, error) {
	if !isValidIdentifier(table) {
		return "", fmt.Errorf("invalid table name: %s", table)
	}
	if len(columns) != len(values) {
		return "", fmt.Errorf("table %s has %d columns but row has %d values", table, len(columns), len(values))
	}

	for _, col := range columns {
		if !isValidIdentifier(col) {
			return "", fmt.Errorf("invalid column name in table %s: %s", table, col)
		}
	}

	valueStrs := make([]string, len(values))
	for i, val := range values {
		valueStrs[i] = FormatValue(val)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		table,
		strings.Join(columns, ", "),
		strings.Join(valueStrs, ", "),
	), nil
}
