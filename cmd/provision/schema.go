package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type schemaFile struct {
	Tables []table `yaml:"tables"`
}

type table struct {
	Name    string   `yaml:"name"`
	Columns []column `yaml:"columns"`
	Checks  []check  `yaml:"checks"`
	Indexes []index  `yaml:"indexes"`
}

type column struct {
	Name       string  `yaml:"name"`
	Type       string  `yaml:"type"`
	Primary    bool    `yaml:"primary"`
	Unique     bool    `yaml:"unique"`
	NotNull    bool    `yaml:"not_null"`
	Default    *string `yaml:"default"`
	References string  `yaml:"references"`
}

type check struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

type index struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
	Unique  bool     `yaml:"unique"`
}

func loadSchema(path string, embedded []byte) (*schemaFile, error) {
	data := embedded
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading schema file: %w", err)
		}
	}

	var sf schemaFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("unmarshalling schema: %w", err)
	}
	if len(sf.Tables) == 0 {
		return nil, fmt.Errorf("schema defines no tables")
	}
	for _, t := range sf.Tables {
		if t.Name == "" {
			return nil, fmt.Errorf("schema contains a table with no name")
		}
		if len(t.Columns) == 0 {
			return nil, fmt.Errorf("table %q has no columns", t.Name)
		}
	}
	return &sf, nil
}

// createTableSQL renders one table as a CREATE TABLE statement. Referenced
// tables must come earlier in the schema file, so ordering in the YAML is
// load-bearing.
func createTableSQL(t table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", t.Name)

	var defs []string
	for _, c := range t.Columns {
		def := "    " + c.Name + " " + c.Type
		if c.Primary {
			def += " PRIMARY KEY"
		}
		if c.Unique {
			def += " UNIQUE"
		}
		if c.NotNull && !c.Primary {
			def += " NOT NULL"
		}
		if c.Default != nil {
			def += " DEFAULT " + *c.Default
		}
		if c.References != "" {
			def += fmt.Sprintf(" REFERENCES %s(id)", c.References)
		}
		defs = append(defs, def)
	}
	for _, ch := range t.Checks {
		defs = append(defs, fmt.Sprintf("    CONSTRAINT %s CHECK (%s)", ch.Name, ch.Expr))
	}

	b.WriteString(strings.Join(defs, ",\n"))
	b.WriteString("\n)")
	return b.String()
}

func createIndexSQL(t table, idx index) string {
	unique := ""
	if idx.Unique {
		unique = "UNIQUE "
	}
	return fmt.Sprintf("CREATE %sINDEX IF NOT EXISTS %s ON %s (%s)",
		unique, idx.Name, t.Name, strings.Join(idx.Columns, ", "))
}
