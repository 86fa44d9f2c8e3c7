package seed

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/emrebaser94/dienstplan-manager/backend/internal/repository"
	"github.com/emrebaser94/dienstplan-manager/backend/internal/utils"
)

var fixtureGroups = []domain.ResidentialGroup{
	{Name: "Haus A", Description: "Wohngruppe im Erdgeschoss"},
	{Name: "Haus B", Description: "Wohngruppe im ersten Stock"},
	{Name: "Haus C", Description: "Außenwohngruppe"},
}

var fixtureTemplates = []domain.ShiftTemplate{
	{Name: "Frühschicht", StartTime: "06:00", EndTime: "14:00", Color: "#3B82F6", SortOrder: 1},
	{Name: "Spätschicht", StartTime: "14:00", EndTime: "22:00", Color: "#F59E0B", SortOrder: 2},
	{Name: "Nachtschicht", StartTime: "22:00", EndTime: "06:00", Color: "#6366F1", SortOrder: 3},
}

func SeedUsers(r *repository.Repository, n int, password string) {
	for i := 0; i < n; i++ {
		user, err := utils.GenerateRandomUser(password)
		if err != nil {
			slog.Error("unable to generate user", "error", err)
			return
		}
		if err := r.CreateUser(user); err != nil {
			// Random usernames can collide, just note it and move on.
			slog.Warn("unable to insert user", "username", user.Username, "error", err)
			continue
		}
		slog.Info("user inserted", "username", user.Username)
	}
}

func SeedEmployees(r *repository.Repository, n int) []*domain.Employee {
	employees := make([]*domain.Employee, 0, n)
	for i := 0; i < n; i++ {
		employee := utils.GenerateRandomEmployee()
		if err := r.CreateEmployee(employee); err != nil {
			slog.Error("unable to insert employee", "error", err)
			return employees
		}
		slog.Info("employee inserted", "name", employee.FirstName+" "+employee.LastName)
		employees = append(employees, employee)
	}
	return employees
}

// SeedFixtures inserts the demo groups, shift templates, a handful of
// employees and a fully staffed current week.
func SeedFixtures(r *repository.Repository) {
	groups := make([]*domain.ResidentialGroup, 0, len(fixtureGroups))
	for _, fixture := range fixtureGroups {
		group := fixture
		if err := r.CreateResidentialGroup(&group); err != nil {
			slog.Error("unable to insert residential group", "name", group.Name, "error", err)
			return
		}
		groups = append(groups, &group)
	}

	templates := make([]*domain.ShiftTemplate, 0, len(fixtureTemplates))
	for _, fixture := range fixtureTemplates {
		template := fixture
		if err := r.CreateShiftTemplate(&template); err != nil {
			slog.Error("unable to insert shift template", "name", template.Name, "error", err)
			return
		}
		templates = append(templates, &template)
	}

	employees := SeedEmployees(r, 8)
	if len(employees) == 0 {
		return
	}

	// Staff every slot of the current week with a random employee.
	now := time.Now()
	monday := now.AddDate(0, 0, -(int(now.Weekday())+6)%7)
	for day := 0; day < 7; day++ {
		date := monday.AddDate(0, 0, day).Format("2006-01-02")
		for _, group := range groups {
			for _, template := range templates {
				shift := &domain.Shift{
					Date:               date,
					EmployeeID:         employees[rand.Intn(len(employees))].ID,
					ResidentialGroupID: group.ID,
					ShiftTemplateID:    template.ID,
				}
				if err := r.CreateShift(shift); err != nil {
					slog.Error("unable to insert shift", "date", date, "error", err)
					return
				}
			}
		}
	}

	slog.Info("fixtures inserted", "groups", len(groups), "templates", len(templates), "employees", len(employees))
}
