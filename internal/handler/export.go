package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/emrebaser94/dienstplan-manager/backend/internal/dayplan"
	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/emrebaser94/dienstplan-manager/backend/internal/utils"
	"github.com/xuri/excelize/v2"
)

var weekdayNames = []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}

// ExportGroupWeekPlan renders one week of the group's roster as an Excel
// sheet: one row per shift template, one column per day.
func (h *Handler) ExportGroupWeekPlan(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(ResidentialGroupCtx).(*domain.ResidentialGroup)

	weekStartParam := r.URL.Query().Get("weekStart")
	if weekStartParam == "" {
		h.badRequest(w, r, errors.New("weekStart query parameter is required"))
		return
	}
	if err := utils.ValidateDate("weekStart", weekStartParam); err != nil {
		h.badRequest(w, r, err)
		return
	}

	weekStart, _ := time.Parse("2006-01-02", weekStartParam)
	if weekStart.Weekday() != time.Monday {
		h.badRequest(w, r, errors.New("weekStart must be a Monday"))
		return
	}
	weekEnd := weekStart.AddDate(0, 0, 6).Format("2006-01-02")

	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	templates, err := h.repository.GetAllShiftTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	shifts, err := h.repository.GetShiftsByGroupBetween(group.ID, weekStartParam, weekEnd)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	collections := dayplan.Collections{
		Groups:    []*domain.ResidentialGroup{group},
		Employees: employees,
		Templates: templates,
		Shifts:    shifts,
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Dienstplan %s — Woche ab %s", group.Name, weekStartParam))

	f.SetCellValue(sheet, "A2", "Schicht")
	f.SetColWidth(sheet, "A", "A", 24)
	for day := 0; day < 7; day++ {
		col, _ := excelize.ColumnNumberToName(2 + day)
		date := weekStart.AddDate(0, 0, day)
		f.SetCellValue(sheet, fmt.Sprintf("%s2", col), fmt.Sprintf("%s %s", weekdayNames[day], date.Format("02.01.")))
		f.SetColWidth(sheet, col, col, 20)
	}
	f.SetCellStyle(sheet, "A2", "H2", headerStyle)

	sortedTemplates := dayplan.SortTemplates(collections.Templates)
	for i, template := range sortedTemplates {
		row := 3 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s (%s-%s)", template.Name, template.StartTime, template.EndTime))
	}

	for day := 0; day < 7; day++ {
		sel := dayplan.Selection{
			Date:    weekStart.AddDate(0, 0, day).Format("2006-01-02"),
			GroupID: group.ID,
		}
		plan := dayplan.Build(collections, sel)

		col, _ := excelize.ColumnNumberToName(2 + day)
		for i, slot := range plan.Slots {
			cell := fmt.Sprintf("%s%d", col, 3+i)
			switch {
			case slot.Employee != nil:
				f.SetCellValue(sheet, cell, slot.Employee.FirstName+" "+slot.Employee.LastName)
			case slot.Shift != nil:
				// Assigned, but the employee record is gone.
				f.SetCellValue(sheet, cell, "unbesetzt")
			default:
				f.SetCellValue(sheet, cell, "-")
			}
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="dienstplan_%s.xlsx"`, weekStartParam))

	if err := f.Write(w); err != nil {
		h.logInternalServerError(r, err)
	}
}

// ExportEmployeeCalendar serves the employee's shifts as an iCalendar feed so
// staff can subscribe from their phone's calendar app.
func (h *Handler) ExportEmployeeCalendar(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	collections, err := dayplan.Load(h.repository)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Dienstplan Manager//Schichtplan//DE")

	for _, es := range dayplan.ShiftsForEmployee(collections, employee.ID) {
		event := cal.AddEvent(es.Shift.ID + "@dienstplan-manager")

		summary := es.TemplateName
		if summary == "" {
			summary = "Schicht"
		}
		event.SetSummary(summary)
		if es.Shift.Notes != "" {
			event.SetDescription(es.Shift.Notes)
		}

		start, startErr := time.ParseInLocation("2006-01-02 15:04", es.Shift.Date+" "+es.StartTime, time.Local)
		end, endErr := time.ParseInLocation("2006-01-02 15:04", es.Shift.Date+" "+es.EndTime, time.Local)
		if startErr != nil || endErr != nil {
			// Template vanished, no times left. Keep the entry as an
			// all-day marker instead of dropping the shift.
			day, _ := time.ParseInLocation("2006-01-02", es.Shift.Date, time.Local)
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}
		if !end.After(start) {
			// Night shift wrapping past midnight.
			end = end.AddDate(0, 0, 1)
		}
		event.SetStartAt(start)
		event.SetEndAt(end)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="schichten.ics"`)

	if _, err := w.Write([]byte(cal.Serialize())); err != nil {
		h.logInternalServerError(r, err)
	}
}
