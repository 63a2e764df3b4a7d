package sqldb

import (
	"strconv"
	"strings"
)

// dialect captures the statement differences between the supported backends.
type dialect struct {
	name   string
	driver string
	// maxParams is the bound-parameter limit of a single statement.
	maxParams int
	// numbered selects $n placeholders instead of ?.
	numbered bool
	// onConflict selects INSERT ... ON CONFLICT DO UPDATE instead of
	// INSERT OR REPLACE.
	onConflict bool
}

var (
	sqliteDialect = dialect{
		name:      "sqlite",
		driver:    "sqlite",
		maxParams: 999,
	}
	postgresDialect = dialect{
		name:       "postgres",
		driver:     "pgx",
		maxParams:  65535,
		numbered:   true,
		onConflict: true,
	}
)

// table describes one relation of the snapshot.
type table struct {
	name    string
	columns []string
	key     []string
	// owner is the column naming the package a row belongs to.
	owner string
}

var (
	packagesTable = table{
		name:    "packages",
		columns: []string{"name", "category", "section", "pkg_section", "version", "release", "description"},
		key:     []string{"name"},
		owner:   "name",
	}
	specTable = table{
		name:    "package_spec",
		columns: []string{"package", "key", "value"},
		key:     []string{"package", "key"},
		owner:   "package",
	}
	dependenciesTable = table{
		name:    "package_dependencies",
		columns: []string{"package", "dependency", "version", "relationship"},
		key:     []string{"package", "dependency", "relationship"},
		owner:   "package",
	}
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS packages (
  name TEXT PRIMARY KEY,
  category TEXT,
  section TEXT,
  pkg_section TEXT,
  version TEXT,
  release TEXT,
  description TEXT
)`,
	`CREATE TABLE IF NOT EXISTS package_spec (
  package TEXT NOT NULL,
  key TEXT NOT NULL,
  value TEXT,
  PRIMARY KEY (package, key)
)`,
	`CREATE TABLE IF NOT EXISTS package_dependencies (
  package TEXT NOT NULL,
  dependency TEXT NOT NULL,
  version TEXT,
  relationship TEXT NOT NULL,
  PRIMARY KEY (package, dependency, relationship)
)`,
	`CREATE INDEX IF NOT EXISTS idx_package_spec_package ON package_spec (package)`,
	`CREATE INDEX IF NOT EXISTS idx_package_dependencies_dependency ON package_dependencies (dependency)`,
}

// rowsPerStatement is how many rows of t fit in one statement.
func (d dialect) rowsPerStatement(t table) int {
	return max(d.maxParams/len(t.columns), 1)
}

// upsert builds a multi-row upsert of n rows into t.
func (d dialect) upsert(t table, n int) string {
	var b strings.Builder
	if d.onConflict {
		b.WriteString("INSERT INTO ")
	} else {
		b.WriteString("INSERT OR REPLACE INTO ")
	}
	b.WriteString(t.name)
	b.WriteString(" (")
	b.WriteString(strings.Join(t.columns, ", "))
	b.WriteString(") VALUES ")

	param := 1
	for row := range n {
		if row > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for col := range t.columns {
			if col > 0 {
				b.WriteString(", ")
			}
			b.WriteString(d.placeholder(param))
			param++
		}
		b.WriteByte(')')
	}

	if d.onConflict {
		b.WriteString(" ON CONFLICT (")
		b.WriteString(strings.Join(t.key, ", "))
		b.WriteString(") DO UPDATE SET ")
		first := true
		for _, col := range t.columns {
			if isKey(t, col) {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(col + " = EXCLUDED." + col)
		}
	}
	return b.String()
}

// deleteByPackage builds a delete of the rows of t owned by n packages.
func (d dialect) deleteByPackage(t table, n int) string {
	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(t.name)
	b.WriteString(" WHERE ")
	b.WriteString(t.owner)
	b.WriteString(" IN (")
	for i := range n {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.placeholder(i + 1))
	}
	b.WriteByte(')')
	return b.String()
}

// selectSources builds the query listing each package's stored source directory.
func (d dialect) selectSources() string {
	return "SELECT package, value FROM " + specTable.name + " WHERE key = " + d.placeholder(1) + " ORDER BY package"
}

func (d dialect) placeholder(n int) string {
	if d.numbered {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

func isKey(t table, col string) bool {
	for _, k := range t.key {
		if k == col {
			return true
		}
	}
	return false
}
