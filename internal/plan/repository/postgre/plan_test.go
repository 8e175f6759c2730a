package postgre

import (
	"strings"
	"testing"

	"github.com/aarondl/sqlboiler/v4/queries"

	"planora-api/internal/dbmodels"
	"planora-api/internal/plan"
)

func TestList_OrdersByEventDateDesc(t *testing.T) {
	r := implRepository{}

	mods := append(r.buildListQuery(plan.ListPlanOption{UserID: "u1"}), r.listOrder())

	sql, _ := queries.BuildQuery(dbmodels.Plans(mods...).Query)
	if !strings.Contains(sql, "ORDER BY event_date DESC") {
		t.Fatalf("list query = %q, want most recent events first", sql)
	}
}
