package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// LoadDB reads a catalog from a tabular source through database/sql. The
// driver is the caller's choice; the CLI registers modernc.org/sqlite.
// Expected tables:
//
//	kinds(name, category, description, interop)
//	kind_fields(kind, name, doc)
//	kind_units(kind, name, symbol, display, scale, offset, canonical)
//	relations(left_kind, op, right_kind, result)
//
// Rows are read in name order so repeated loads produce identical catalogs.
func LoadDB(ctx context.Context, db *sql.DB) (*Catalog, error) {
	c := &Catalog{}
	byName := make(map[string]*KindSpec)

	rows, err := db.QueryContext(ctx, "SELECT name, category, description, interop FROM kinds ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("catalog: query kinds: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		k := &KindSpec{}
		if err := rows.Scan(&k.Name, &k.Category, &k.Description, &k.Interop); err != nil {
			return nil, fmt.Errorf("catalog: scan kind: %w", err)
		}
		c.Kinds = append(c.Kinds, k)
		byName[k.Name] = k
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: iterate kinds: %w", err)
	}

	if err := loadFields(ctx, db, byName); err != nil {
		return nil, err
	}
	if err := loadUnits(ctx, db, byName); err != nil {
		return nil, err
	}
	if err := loadRelations(ctx, db, c); err != nil {
		return nil, err
	}
	return c, nil
}

func loadFields(ctx context.Context, db *sql.DB, byName map[string]*KindSpec) error {
	rows, err := db.QueryContext(ctx, "SELECT kind, name, doc FROM kind_fields ORDER BY kind, name")
	if err != nil {
		return fmt.Errorf("catalog: query kind_fields: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var kind string
		f := &FieldSpec{}
		if err := rows.Scan(&kind, &f.Name, &f.Doc); err != nil {
			return fmt.Errorf("catalog: scan field: %w", err)
		}
		k, ok := byName[kind]
		if !ok {
			return fmt.Errorf("catalog: field %q references unknown kind %q", f.Name, kind)
		}
		k.Fields = append(k.Fields, f)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("catalog: iterate kind_fields: %w", err)
	}
	return nil
}

func loadUnits(ctx context.Context, db *sql.DB, byName map[string]*KindSpec) error {
	rows, err := db.QueryContext(ctx,
		"SELECT kind, name, symbol, display, scale, offset, canonical FROM kind_units ORDER BY kind, name")
	if err != nil {
		return fmt.Errorf("catalog: query kind_units: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var kind string
		u := &UnitSpec{}
		if err := rows.Scan(&kind, &u.Name, &u.Symbol, &u.Display, &u.Scale, &u.Offset, &u.Canonical); err != nil {
			return fmt.Errorf("catalog: scan unit: %w", err)
		}
		k, ok := byName[kind]
		if !ok {
			return fmt.Errorf("catalog: unit %q references unknown kind %q", u.Name, kind)
		}
		k.Units = append(k.Units, u)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("catalog: iterate kind_units: %w", err)
	}
	return nil
}

func loadRelations(ctx context.Context, db *sql.DB, c *Catalog) error {
	rows, err := db.QueryContext(ctx,
		"SELECT left_kind, op, right_kind, result FROM relations ORDER BY left_kind, op, right_kind, result")
	if err != nil {
		return fmt.Errorf("catalog: query relations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		r := &RelationSpec{}
		if err := rows.Scan(&r.Left, &r.Op, &r.Right, &r.Result); err != nil {
			return fmt.Errorf("catalog: scan relation: %w", err)
		}
		c.Relations = append(c.Relations, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("catalog: iterate relations: %w", err)
	}
	return nil
}
