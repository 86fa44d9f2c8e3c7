package dayplan

import (
	"testing"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplate(id string, name string, sortOrder int32) *domain.ShiftTemplate {
	return &domain.ShiftTemplate{
		ID:        id,
		Name:      name,
		StartTime: "06:00",
		EndTime:   "14:00",
		SortOrder: sortOrder,
	}
}

func newShift(id string, date string, employeeID string, groupID string, templateID string) *domain.Shift {
	return &domain.Shift{
		ID:                 id,
		Date:               date,
		EmployeeID:         employeeID,
		ResidentialGroupID: groupID,
		ShiftTemplateID:    templateID,
	}
}

func TestSortTemplates_OrderedBySortOrder(t *testing.T) {
	templates := []*domain.ShiftTemplate{
		newTemplate("t-nacht", "Nachtschicht", 3),
		newTemplate("t-frueh", "Frühschicht", 1),
		newTemplate("t-spaet", "Spätschicht", 2),
	}

	sorted := SortTemplates(templates)

	require.Len(t, sorted, 3)
	assert.Equal(t, "Frühschicht", sorted[0].Name)
	assert.Equal(t, "Spätschicht", sorted[1].Name)
	assert.Equal(t, "Nachtschicht", sorted[2].Name)

	// The input keeps its order.
	assert.Equal(t, "Nachtschicht", templates[0].Name)
}

func TestSortTemplates_StableForTies(t *testing.T) {
	templates := []*domain.ShiftTemplate{
		newTemplate("t-1", "Eins", 1),
		newTemplate("t-2", "Zwei", 0),
		newTemplate("t-3", "Drei", 1),
		newTemplate("t-4", "Vier", 1),
	}

	sorted := SortTemplates(templates)

	ids := make([]string, 0, len(sorted))
	for _, template := range sorted {
		ids = append(ids, template.ID)
	}
	// Templates sharing sortOrder 1 keep their fetch order.
	assert.Equal(t, []string{"t-2", "t-1", "t-3", "t-4"}, ids)
}

func TestVisibleShifts_ExactEquality(t *testing.T) {
	sel := Selection{Date: "2026-08-30", GroupID: "g-a"}
	shifts := []*domain.Shift{
		newShift("s-1", "2026-08-30", "e-1", "g-a", "t-1"),
		newShift("s-2", "2026-08-30", "e-2", "g-b", "t-1"), // other group
		newShift("s-3", "2026-08-31", "e-3", "g-a", "t-1"), // other date
		newShift("s-4", "2026-08-30", "e-4", "g-a", "t-2"),
	}

	visible := VisibleShifts(shifts, sel)

	require.Len(t, visible, 2)
	assert.Equal(t, "s-1", visible[0].ID)
	assert.Equal(t, "s-4", visible[1].ID)
}

func TestVisibleShifts_EmptyForUnknownSelection(t *testing.T) {
	shifts := []*domain.Shift{
		newShift("s-1", "2026-08-30", "e-1", "g-a", "t-1"),
	}

	assert.Empty(t, VisibleShifts(shifts, Selection{Date: "2026-01-01", GroupID: "g-a"}))
	assert.Empty(t, VisibleShifts(shifts, Selection{Date: "2026-08-30", GroupID: "g-zzz"}))
}

func TestBuild_ResolvesAssignedEmployee(t *testing.T) {
	anna := &domain.Employee{ID: "e-anna", FirstName: "Anna", LastName: "Muster", Email: "a@x.com", Position: "Pfleger", MaxWeeklyHours: 40}
	c := Collections{
		Groups:    []*domain.ResidentialGroup{{ID: "g-a", Name: "Haus A", Description: "Test"}},
		Employees: []*domain.Employee{anna},
		Templates: []*domain.ShiftTemplate{
			newTemplate("t-frueh", "Frühschicht", 1),
			newTemplate("t-spaet", "Spätschicht", 2),
		},
		Shifts: []*domain.Shift{
			newShift("s-1", "2026-08-30", "e-anna", "g-a", "t-frueh"),
		},
	}

	plan := Build(c, Selection{Date: "2026-08-30", GroupID: "g-a"})

	require.Len(t, plan.Slots, 2)

	assert.Equal(t, "Frühschicht", plan.Slots[0].Template.Name)
	require.NotNil(t, plan.Slots[0].Shift)
	require.NotNil(t, plan.Slots[0].Employee)
	assert.Equal(t, "e-anna", plan.Slots[0].Employee.ID)

	assert.Nil(t, plan.Slots[1].Shift)
	assert.Nil(t, plan.Slots[1].Employee)

	require.Len(t, plan.VisibleShifts, 1)
	assert.Equal(t, "e-anna", plan.VisibleShifts[0].EmployeeID)
}

func TestBuild_DanglingEmployeeReference(t *testing.T) {
	c := Collections{
		Templates: []*domain.ShiftTemplate{newTemplate("t-frueh", "Frühschicht", 1)},
		Shifts: []*domain.Shift{
			newShift("s-1", "2026-08-30", "e-gone", "g-a", "t-frueh"),
		},
	}

	plan := Build(c, Selection{Date: "2026-08-30", GroupID: "g-a"})

	require.Len(t, plan.Slots, 1)
	// The shift stays visible so it can be deleted, but the slot reads as
	// unassigned.
	require.NotNil(t, plan.Slots[0].Shift)
	assert.Nil(t, plan.Slots[0].Employee)
}

func TestBuild_DoubleAssignmentShowsFirstByFetchOrder(t *testing.T) {
	c := Collections{
		Employees: []*domain.Employee{
			{ID: "e-1", FirstName: "Anna", LastName: "Muster"},
			{ID: "e-2", FirstName: "Lukas", LastName: "Weber"},
		},
		Templates: []*domain.ShiftTemplate{newTemplate("t-frueh", "Frühschicht", 1)},
		Shifts: []*domain.Shift{
			newShift("s-1", "2026-08-30", "e-1", "g-a", "t-frueh"),
			newShift("s-2", "2026-08-30", "e-2", "g-a", "t-frueh"),
		},
	}

	plan := Build(c, Selection{Date: "2026-08-30", GroupID: "g-a"})

	// Both records exist, the slot deterministically shows the first.
	require.Len(t, plan.VisibleShifts, 2)
	require.NotNil(t, plan.Slots[0].Employee)
	assert.Equal(t, "e-1", plan.Slots[0].Employee.ID)
}

func TestBuild_IsPure(t *testing.T) {
	c := Collections{
		Employees: []*domain.Employee{{ID: "e-1", FirstName: "Anna", LastName: "Muster"}},
		Templates: []*domain.ShiftTemplate{
			newTemplate("t-2", "Spätschicht", 2),
			newTemplate("t-1", "Frühschicht", 1),
		},
		Shifts: []*domain.Shift{
			newShift("s-1", "2026-08-30", "e-1", "g-a", "t-1"),
		},
	}
	sel := Selection{Date: "2026-08-30", GroupID: "g-a"}

	first := Build(c, sel)
	second := Build(c, sel)

	assert.Equal(t, first, second)
	// The template collection is not reordered in place.
	assert.Equal(t, "t-2", c.Templates[0].ID)
}

func TestDefaultSelection(t *testing.T) {
	groups := []*domain.ResidentialGroup{
		{ID: "g-a", Name: "Haus A"},
		{ID: "g-b", Name: "Haus B"},
	}

	sel := DefaultSelection(groups, "2026-08-30")
	assert.Equal(t, "2026-08-30", sel.Date)
	assert.Equal(t, "g-a", sel.GroupID)

	empty := DefaultSelection(nil, "2026-08-30")
	assert.Equal(t, "2026-08-30", empty.Date)
	assert.Empty(t, empty.GroupID)
}

func TestShiftsForEmployee_CustomTimesWin(t *testing.T) {
	customStart := "07:30"
	shift := newShift("s-1", "2026-08-30", "e-1", "g-a", "t-frueh")
	shift.CustomStartTime = &customStart

	c := Collections{
		Templates: []*domain.ShiftTemplate{newTemplate("t-frueh", "Frühschicht", 1)},
		Shifts: []*domain.Shift{
			shift,
			newShift("s-2", "2026-08-31", "e-2", "g-a", "t-frueh"),
		},
	}

	result := ShiftsForEmployee(c, "e-1")

	require.Len(t, result, 1)
	assert.Equal(t, "Frühschicht", result[0].TemplateName)
	assert.Equal(t, "07:30", result[0].StartTime)
	assert.Equal(t, "14:00", result[0].EndTime)
}

func TestShiftsForEmployee_MissingTemplate(t *testing.T) {
	c := Collections{
		Shifts: []*domain.Shift{
			newShift("s-1", "2026-08-30", "e-1", "g-a", "t-gone"),
		},
	}

	result := ShiftsForEmployee(c, "e-1")

	require.Len(t, result, 1)
	assert.Empty(t, result[0].TemplateName)
	assert.Empty(t, result[0].StartTime)
}

func TestBuild_WeekScopedShiftsMatchFullSet(t *testing.T) {
	templates := []*domain.ShiftTemplate{
		newTemplate("t-frueh", "Frühschicht", 1),
		newTemplate("t-spaet", "Spätschicht", 2),
	}
	employees := []*domain.Employee{
		{ID: "e-anna", FirstName: "Anna", LastName: "Muster"},
		{ID: "e-ben", FirstName: "Ben", LastName: "Schulz"},
	}
	full := Collections{
		Employees: employees,
		Templates: templates,
		Shifts: []*domain.Shift{
			newShift("s-1", "2026-08-24", "e-anna", "g-a", "t-frueh"),
			newShift("s-2", "2026-08-26", "e-ben", "g-a", "t-spaet"),
			newShift("s-3", "2026-08-30", "e-anna", "g-a", "t-spaet"),
			newShift("s-4", "2026-09-02", "e-ben", "g-a", "t-frueh"), // week after
			newShift("s-5", "2026-08-25", "e-anna", "g-b", "t-frueh"), // other group
		},
	}

	// What a range query scoped to group g-a and the week of 2026-08-24
	// through 2026-08-30 would return.
	scoped := full
	scoped.Shifts = []*domain.Shift{full.Shifts[0], full.Shifts[1], full.Shifts[2]}

	for day := 0; day < 7; day++ {
		date := []string{
			"2026-08-24", "2026-08-25", "2026-08-26", "2026-08-27",
			"2026-08-28", "2026-08-29", "2026-08-30",
		}[day]
		sel := Selection{Date: date, GroupID: "g-a"}
		assert.Equal(t, Build(full, sel), Build(scoped, sel), date)
	}
}
