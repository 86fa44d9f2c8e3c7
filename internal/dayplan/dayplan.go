// Package dayplan derives the day view of a residential group's duty roster
// from plain in-memory collections. Everything here is a pure function of its
// inputs so it can be tested without a database or HTTP stack.
package dayplan

import (
	"sort"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
)

// Collections are read-through copies of the persisted record sets. They are
// always replaced wholesale after a reload, never patched in place.
type Collections struct {
	Groups    []*domain.ResidentialGroup `json:"groups"`
	Employees []*domain.Employee         `json:"employees"`
	Templates []*domain.ShiftTemplate    `json:"templates"`
	Shifts    []*domain.Shift            `json:"shifts"`
}

// Selection is the UI state the day view depends on: one calendar date and
// one group.
type Selection struct {
	Date    string `json:"date"`
	GroupID string `json:"groupId"`
}

// Slot pairs a template with the assignment currently shown for it. Shift is
// nil when the slot is open. Employee is nil when the slot is open or when
// the shift's employee reference no longer resolves; the shift itself is kept
// in that case so the dangling record stays visible and deletable.
type Slot struct {
	Template *domain.ShiftTemplate `json:"template"`
	Shift    *domain.Shift         `json:"shift"`
	Employee *domain.Employee      `json:"employee"`
}

// Plan is the fully derived day view.
type Plan struct {
	Selection     Selection       `json:"selection"`
	Slots         []Slot          `json:"slots"`
	VisibleShifts []*domain.Shift `json:"visibleShifts"`
}

// DefaultSelection picks today's date and the first fetched group, matching
// what the roster screen shows before the user touches anything.
func DefaultSelection(groups []*domain.ResidentialGroup, today string) Selection {
	sel := Selection{Date: today}
	if len(groups) > 0 {
		sel.GroupID = groups[0].ID
	}
	return sel
}

// SortTemplates returns the templates ordered ascending by SortOrder. The
// sort is stable: templates sharing a SortOrder keep their fetch order. The
// input slice is not modified.
func SortTemplates(templates []*domain.ShiftTemplate) []*domain.ShiftTemplate {
	sorted := make([]*domain.ShiftTemplate, len(templates))
	copy(sorted, templates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})
	return sorted
}

// VisibleShifts filters to the shifts of exactly the selected date and group.
// Collection order is preserved.
func VisibleShifts(shifts []*domain.Shift, sel Selection) []*domain.Shift {
	visible := make([]*domain.Shift, 0)
	for _, shift := range shifts {
		if shift.Date == sel.Date && shift.ResidentialGroupID == sel.GroupID {
			visible = append(visible, shift)
		}
	}
	return visible
}

// Build computes the day plan for the given selection. Each sorted template
// gets the first visible shift referencing it; if several shifts occupy the
// same slot only the first by collection order is shown. A shift whose
// employee cannot be resolved still fills the slot, with a nil Employee.
func Build(c Collections, sel Selection) *Plan {
	visible := VisibleShifts(c.Shifts, sel)

	employeesByID := make(map[string]*domain.Employee, len(c.Employees))
	for _, employee := range c.Employees {
		employeesByID[employee.ID] = employee
	}

	templates := SortTemplates(c.Templates)
	slots := make([]Slot, 0, len(templates))
	for _, template := range templates {
		slot := Slot{Template: template}
		for _, shift := range visible {
			if shift.ShiftTemplateID == template.ID {
				slot.Shift = shift
				slot.Employee = employeesByID[shift.EmployeeID]
				break
			}
		}
		slots = append(slots, slot)
	}

	return &Plan{
		Selection:     sel,
		Slots:         slots,
		VisibleShifts: visible,
	}
}

// EmployeeShift is one shift of one employee with the display times already
// resolved: custom overrides win over the template's times, and a shift whose
// template no longer exists falls back to empty times rather than failing.
type EmployeeShift struct {
	Shift        *domain.Shift
	TemplateName string
	StartTime    string
	EndTime      string
}

// ShiftsForEmployee collects the employee's shifts in collection order.
func ShiftsForEmployee(c Collections, employeeID string) []EmployeeShift {
	templatesByID := make(map[string]*domain.ShiftTemplate, len(c.Templates))
	for _, template := range c.Templates {
		templatesByID[template.ID] = template
	}

	result := make([]EmployeeShift, 0)
	for _, shift := range c.Shifts {
		if shift.EmployeeID != employeeID {
			continue
		}

		es := EmployeeShift{Shift: shift}
		if template, ok := templatesByID[shift.ShiftTemplateID]; ok {
			es.TemplateName = template.Name
			es.StartTime = template.StartTime
			es.EndTime = template.EndTime
		}
		if shift.CustomStartTime != nil {
			es.StartTime = *shift.CustomStartTime
		}
		if shift.CustomEndTime != nil {
			es.EndTime = *shift.CustomEndTime
		}
		result = append(result, es)
	}
	return result
}
