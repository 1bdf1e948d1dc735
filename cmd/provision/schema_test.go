package main

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedSchema(t *testing.T) {
	sf, err := loadSchema("", embeddedSchema)
	if err != nil {
		t.Fatalf("loadSchema: %v", err)
	}

	want := []string{
		"users", "external_users", "rooms", "bookings", "menu_items",
		"menu_images", "gallery_images", "notification_bars",
		"contact_messages", "guests",
	}
	got := make(map[string]bool, len(sf.Tables))
	for _, tbl := range sf.Tables {
		got[tbl.Name] = true
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("embedded schema is missing table %q", name)
		}
	}

	// rooms must precede bookings: bookings.room_id references rooms(id)
	// and tables are created in file order.
	roomsIdx, bookingsIdx := -1, -1
	for i, tbl := range sf.Tables {
		switch tbl.Name {
		case "rooms":
			roomsIdx = i
		case "bookings":
			bookingsIdx = i
		}
	}
	if roomsIdx > bookingsIdx {
		t.Error("rooms must be declared before bookings")
	}
}

func TestCreateTableSQL(t *testing.T) {
	def := "'pending'"
	sql := createTableSQL(table{
		Name: "bookings",
		Columns: []column{
			{Name: "id", Type: "bigserial", Primary: true},
			{Name: "room_id", Type: "bigint", NotNull: true, References: "rooms"},
			{Name: "booking_status", Type: "text", NotNull: true, Default: &def},
		},
		Checks: []check{
			{Name: "bookings_dates_check", Expr: "check_out_date > check_in_date"},
		},
	})

	for _, want := range []string{
		"CREATE TABLE bookings",
		"id bigserial PRIMARY KEY",
		"room_id bigint NOT NULL REFERENCES rooms(id)",
		"booking_status text NOT NULL DEFAULT 'pending'",
		"CONSTRAINT bookings_dates_check CHECK (check_out_date > check_in_date)",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("createTableSQL output missing %q:\n%s", want, sql)
		}
	}
}

func TestCreateIndexSQL(t *testing.T) {
	sql := createIndexSQL(
		table{Name: "bookings"},
		index{Name: "idx_bookings_room_id", Columns: []string{"room_id"}},
	)
	if sql != "CREATE INDEX IF NOT EXISTS idx_bookings_room_id ON bookings (room_id)" {
		t.Errorf("unexpected index SQL: %s", sql)
	}
}
