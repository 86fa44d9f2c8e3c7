package dayplan

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	groups    []*domain.ResidentialGroup
	employees []*domain.Employee
	templates []*domain.ShiftTemplate
	shifts    []*domain.Shift

	groupsErr    error
	employeesErr error
	templatesErr error
	shiftsErr    error

	calls atomic.Int32
}

func (m *mockStore) GetAllResidentialGroups() ([]*domain.ResidentialGroup, error) {
	m.calls.Add(1)
	return m.groups, m.groupsErr
}

func (m *mockStore) GetAllEmployees() ([]*domain.Employee, error) {
	m.calls.Add(1)
	return m.employees, m.employeesErr
}

func (m *mockStore) GetAllShiftTemplates() ([]*domain.ShiftTemplate, error) {
	m.calls.Add(1)
	return m.templates, m.templatesErr
}

func (m *mockStore) GetAllShifts() ([]*domain.Shift, error) {
	m.calls.Add(1)
	return m.shifts, m.shiftsErr
}

func TestLoad_AllCollections(t *testing.T) {
	store := &mockStore{
		groups:    []*domain.ResidentialGroup{{ID: "g-a", Name: "Haus A"}},
		employees: []*domain.Employee{{ID: "e-1", FirstName: "Anna", LastName: "Muster"}},
		templates: []*domain.ShiftTemplate{{ID: "t-1", Name: "Frühschicht"}},
		shifts:    []*domain.Shift{{ID: "s-1", Date: "2026-08-30"}},
	}

	c, err := Load(store)

	require.NoError(t, err)
	assert.Len(t, c.Groups, 1)
	assert.Len(t, c.Employees, 1)
	assert.Len(t, c.Templates, 1)
	assert.Len(t, c.Shifts, 1)
	assert.Equal(t, int32(4), store.calls.Load())
}

func TestLoad_OneFailureDoesNotStopOthers(t *testing.T) {
	storeErr := errors.New("store unavailable")
	store := &mockStore{
		groups:    []*domain.ResidentialGroup{{ID: "g-a", Name: "Haus A"}},
		employees: []*domain.Employee{{ID: "e-1", FirstName: "Anna", LastName: "Muster"}},
		shiftsErr: storeErr,
	}

	c, err := Load(store)

	require.ErrorIs(t, err, storeErr)
	// Every collection was still fetched; the ones that succeeded are kept.
	assert.Equal(t, int32(4), store.calls.Load())
	assert.Len(t, c.Groups, 1)
	assert.Len(t, c.Employees, 1)
	assert.Nil(t, c.Shifts)
}

func TestLoad_IdempotentWithoutMutation(t *testing.T) {
	store := &mockStore{
		groups:    []*domain.ResidentialGroup{{ID: "g-a", Name: "Haus A"}},
		templates: []*domain.ShiftTemplate{{ID: "t-1", Name: "Frühschicht", SortOrder: 1}},
		shifts:    []*domain.Shift{{ID: "s-1", Date: "2026-08-30", ResidentialGroupID: "g-a", ShiftTemplateID: "t-1"}},
	}
	sel := Selection{Date: "2026-08-30", GroupID: "g-a"}

	first, err := Load(store)
	require.NoError(t, err)
	second, err := Load(store)
	require.NoError(t, err)

	assert.Equal(t, Build(first, sel), Build(second, sel))
}
