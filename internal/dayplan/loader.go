package dayplan

import (
	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Store is the slice of the repository the loader needs.
type Store interface {
	GetAllResidentialGroups() ([]*domain.ResidentialGroup, error)
	GetAllEmployees() ([]*domain.Employee, error)
	GetAllShiftTemplates() ([]*domain.ShiftTemplate, error)
	GetAllShifts() ([]*domain.Shift, error)
}

// Load fetches the four collections concurrently. The fetches are independent
// failure domains: one failing does not stop the others, and the collections
// that did load are returned alongside the first error. There is no retry.
func Load(store Store) (Collections, error) {
	var c Collections

	var g errgroup.Group
	g.Go(func() error {
		groups, err := store.GetAllResidentialGroups()
		if err != nil {
			return err
		}
		c.Groups = groups
		return nil
	})
	g.Go(func() error {
		employees, err := store.GetAllEmployees()
		if err != nil {
			return err
		}
		c.Employees = employees
		return nil
	})
	g.Go(func() error {
		templates, err := store.GetAllShiftTemplates()
		if err != nil {
			return err
		}
		c.Templates = templates
		return nil
	})
	g.Go(func() error {
		shifts, err := store.GetAllShifts()
		if err != nil {
			return err
		}
		c.Shifts = shifts
		return nil
	})

	if err := g.Wait(); err != nil {
		return c, err
	}

	return c, nil
}
