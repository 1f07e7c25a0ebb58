package dataset

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// LoadSQLite reads one table of a SQLite database file into a Table.
// When tableName is empty the database must contain exactly one user table.
// Failures are reported as *LoadError, like the CSV loader.
func LoadSQLite(path, tableName string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{Kind: NotFound, Path: path, Err: err}
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, &LoadError{Kind: Malformed, Path: path, Err: err}
	}
	defer func() { _ = db.Close() }()

	if tableName == "" {
		tableName, err = soleTable(db)
		if err != nil {
			return nil, &LoadError{Kind: Malformed, Path: path, Err: err}
		}
	}

	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %q", tableName))
	if err != nil {
		return nil, &LoadError{Kind: Malformed, Path: path, Err: err}
	}
	defer func() { _ = rows.Close() }()

	names, err := rows.Columns()
	if err != nil {
		return nil, &LoadError{Kind: Malformed, Path: path, Err: err}
	}

	cells := make([][]string, len(names))
	for rows.Next() {
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &LoadError{Kind: Malformed, Path: path, Err: err}
		}
		for i, v := range values {
			cells[i] = append(cells[i], cellText(v))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Kind: Malformed, Path: path, Err: err}
	}

	return build(path, names, cells)
}

// cellText converts a scanned SQL value into the same raw text form the CSV
// loader sees, so both sources share one classification pass. NULL maps to
// the empty string, which classify treats as missing.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

func soleTable(db *sql.DB) (string, error) {
	rows, err := db.Query(`
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return "", err
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	switch len(names) {
	case 0:
		return "", fmt.Errorf("database contains no tables")
	case 1:
		return names[0], nil
	default:
		return "", fmt.Errorf("database contains %d tables, use --table to pick one", len(names))
	}
}
