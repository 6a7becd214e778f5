// Package schema describes the persisted shape of the social model: every
// table, column, length bound and named constraint.
//
// A Registry is built once at process start with NewRegistry and handed to the
// persistence components that need it. There is no package-level registry.
package schema

import (
	"fmt"
	"strings"
)

// Table names.
const (
	TableUser         = "user"
	TableComment      = "comment"
	TablePost         = "post"
	TableMedia        = "media"
	TableFollower     = "follower"
	TableFollowerUser = "follower_user"
)

// Length bounds of the VARCHAR columns.
const (
	ShortTextLength = 120
	LongTextLength  = 255
)

type ColumnType string

const (
	TypeSerial  ColumnType = "SERIAL"
	TypeInteger ColumnType = "INTEGER"
	TypeVarchar ColumnType = "VARCHAR"
)

type Reference struct {
	Table      string
	Column     string
	Constraint string
}

type Column struct {
	Name       string
	Type       ColumnType
	Length     int
	Nullable   bool
	PrimaryKey bool

	// Unique holds the name of the unique constraint, empty when the column is not unique.
	Unique     string
	References *Reference
}

type Table struct {
	Name    string
	Columns []Column

	// PrimaryKey is set for composite keys only; single-column keys use Column.PrimaryKey.
	PrimaryKey           []string
	PrimaryKeyConstraint string
}

// Column returns the named column of the table.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

type Registry struct {
	tables      []Table
	byName      map[string]int
	constraints map[string]constraintRef
}

type constraintRef struct {
	table  string
	column string
}

func NewRegistry() *Registry {
	id := Column{Name: "id", Type: TypeSerial, PrimaryKey: true}
	short := func(name string) Column {
		return Column{Name: name, Type: TypeVarchar, Length: ShortTextLength}
	}
	fk := func(name, table, constraint string) Column {
		return Column{
			Name: name,
			Type: TypeInteger,
			References: &Reference{
				Table:      table,
				Column:     "id",
				Constraint: constraint,
			},
		}
	}

	username := short("username")
	username.Unique = "user_username_key"
	email := short("email")
	email.Unique = "user_email_key"

	tables := []Table{
		{
			Name:    TableUser,
			Columns: []Column{id, username, short("firstname"), short("lastname"), email},
		},
		{
			Name:    TablePost,
			Columns: []Column{id, fk("user_id", TableUser, "post_user_id_fkey")},
		},
		{
			Name: TableComment,
			Columns: []Column{
				id,
				{Name: "comment_text", Type: TypeVarchar, Length: LongTextLength},
				fk("user_id", TableUser, "comment_user_id_fkey"),
				fk("post_id", TablePost, "comment_post_id_fkey"),
			},
		},
		{
			Name: TableMedia,
			Columns: []Column{
				id,
				short("type"),
				{Name: "url", Type: TypeVarchar, Length: LongTextLength},
				fk("post_id", TablePost, "media_post_id_fkey"),
			},
		},
		{
			Name:    TableFollower,
			Columns: []Column{id},
		},
		{
			Name: TableFollowerUser,
			Columns: []Column{
				fk("user_from", TableUser, "follower_user_user_from_fkey"),
				fk("user_to", TableFollower, "follower_user_user_to_fkey"),
			},
			PrimaryKey:           []string{"user_from", "user_to"},
			PrimaryKeyConstraint: "follower_user_pkey",
		},
	}

	r := &Registry{
		tables:      tables,
		byName:      make(map[string]int, len(tables)),
		constraints: make(map[string]constraintRef),
	}

	for i, t := range tables {
		r.byName[t.Name] = i
		for _, c := range t.Columns {
			if c.Unique != "" {
				r.constraints[c.Unique] = constraintRef{table: t.Name, column: c.Name}
			}
			if c.References != nil {
				r.constraints[c.References.Constraint] = constraintRef{table: t.Name, column: c.Name}
			}
		}
		if t.PrimaryKeyConstraint != "" {
			r.constraints[t.PrimaryKeyConstraint] = constraintRef{
				table:  t.Name,
				column: strings.Join(t.PrimaryKey, ","),
			}
		}
	}

	return r
}

// Tables returns the tables in creation order.
func (r *Registry) Tables() []Table {
	out := make([]Table, len(r.tables))
	copy(out, r.tables)
	return out
}

func (r *Registry) TableNames() []string {
	names := make([]string, 0, len(r.tables))
	for _, t := range r.tables {
		names = append(names, t.Name)
	}
	return names
}

func (r *Registry) Table(name string) (Table, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Table{}, false
	}
	return r.tables[i], true
}

// ConstraintColumn resolves a named storage constraint to the table and column it guards.
func (r *Registry) ConstraintColumn(constraint string) (table, column string, ok bool) {
	ref, ok := r.constraints[constraint]
	if !ok {
		return "", "", false
	}
	return ref.table, ref.column, true
}

// CreateStatements renders the DDL of every table in creation order.
func (r *Registry) CreateStatements() []string {
	stmts := make([]string, 0, len(r.tables))
	for _, t := range r.tables {
		stmts = append(stmts, createStatement(t))
	}
	return stmts
}

func createStatement(t Table) string {
	lines := make([]string, 0, len(t.Columns)+1)
	for _, c := range t.Columns {
		lines = append(lines, "    "+columnDefinition(c))
	}
	if len(t.PrimaryKey) > 0 {
		lines = append(lines, fmt.Sprintf("    CONSTRAINT %s PRIMARY KEY (%s)",
			t.PrimaryKeyConstraint, strings.Join(t.PrimaryKey, ", ")))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);", Quote(t.Name), strings.Join(lines, ",\n"))
}

func columnDefinition(c Column) string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString(" ")

	switch {
	case c.Type == TypeVarchar:
		fmt.Fprintf(&b, "VARCHAR(%d)", c.Length)
	default:
		b.WriteString(string(c.Type))
	}

	if c.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
	} else if !c.Nullable {
		b.WriteString(" NOT NULL")
	}

	if c.Unique != "" {
		fmt.Fprintf(&b, " CONSTRAINT %s UNIQUE", c.Unique)
	}

	if ref := c.References; ref != nil {
		fmt.Fprintf(&b, " CONSTRAINT %s REFERENCES %s(%s) ON DELETE CASCADE",
			ref.Constraint, Quote(ref.Table), ref.Column)
	}

	return b.String()
}

// Quote returns a double-quoted identifier; "user" is reserved in PostgreSQL.
func Quote(identifier string) string {
	return `"` + strings.ReplaceAll(identifier, `"`, `""`) + `"`
}
