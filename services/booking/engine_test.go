package booking

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"

	appointmentRepo "barberbook/database/repository/appointment"
)

// In-memory fakes for the repositories and the gateway. Only what the engine
// touches is implemented; everything is keyed the way the Mongo repos key it.

type fakeAppointmentRepo struct {
	appts     map[string]*models.Appointment
	createErr error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]*models.Appointment)}
}

func (r *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	a, ok := r.appts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) ListByEstablishment(establishmentID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.EstablishmentID == establishmentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListOccupyingInWindow(employeeID string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.EmployeeID != employeeID || !models.Occupying(a.Status) {
			continue
		}
		if !a.StartTime.Before(from) && a.StartTime.Before(to) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) CreateIfSlotFree(ctx context.Context, appt *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	end := appt.EndTime()
	for _, a := range r.appts {
		if a.EmployeeID != appt.EmployeeID || !models.Occupying(a.Status) {
			continue
		}
		if appt.StartTime.Before(a.EndTime()) && end.After(a.StartTime) {
			return appointmentRepo.ErrSlotTaken
		}
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	cp := *appt
	r.appts[appt.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) UpdateStatusFrom(id, from, to, paymentID string) (bool, error) {
	a, ok := r.appts[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	if paymentID != "" {
		a.PaymentID = paymentID
	}
	a.UpdatedAt = time.Now()
	return true, nil
}

func (r *fakeAppointmentRepo) SetStatus(id, status string) error {
	a, ok := r.appts[id]
	if !ok {
		return fmt.Errorf("appointment %s not found", id)
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	return nil
}

func (r *fakeAppointmentRepo) CancelStalePending(olderThan time.Time) (int64, error) {
	var n int64
	for _, a := range r.appts {
		if a.Status == models.StatusPendingPayment && a.CreatedAt.Before(olderThan) {
			a.Status = models.StatusCancelled
			n++
		}
	}
	return n, nil
}

type fakeAvailabilityRepo struct {
	templates map[string]*models.Availability
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{templates: make(map[string]*models.Availability)}
}

func (r *fakeAvailabilityRepo) Replace(employeeID string, days []models.AvailabilityDay) (*models.Availability, error) {
	tmpl := &models.Availability{EmployeeID: employeeID, Days: days, UpdatedAt: time.Now()}
	r.templates[employeeID] = tmpl
	return tmpl, nil
}

func (r *fakeAvailabilityRepo) GetByEmployee(employeeID string) (*models.Availability, error) {
	return r.templates[employeeID], nil
}

type fakeEmployeeRepo struct {
	employees map[string]*models.Employee
}

func (r *fakeEmployeeRepo) Create(emp *models.Employee) error { r.employees[emp.ID] = emp; return nil }
func (r *fakeEmployeeRepo) Update(emp *models.Employee) error { r.employees[emp.ID] = emp; return nil }
func (r *fakeEmployeeRepo) Delete(id string) error            { delete(r.employees, id); return nil }
func (r *fakeEmployeeRepo) GetByID(id string) (*models.Employee, error) {
	return r.employees[id], nil
}
func (r *fakeEmployeeRepo) ListByEstablishment(establishmentID string) ([]models.Employee, error) {
	var out []models.Employee
	for _, e := range r.employees {
		if e.EstablishmentID == establishmentID {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakeEstablishmentRepo struct {
	establishments map[string]*models.Establishment
}

func (r *fakeEstablishmentRepo) Create(est *models.Establishment) error {
	r.establishments[est.ID] = est
	return nil
}
func (r *fakeEstablishmentRepo) Update(est *models.Establishment) error {
	r.establishments[est.ID] = est
	return nil
}
func (r *fakeEstablishmentRepo) GetByID(id string) (*models.Establishment, error) {
	return r.establishments[id], nil
}
func (r *fakeEstablishmentRepo) GetByOwnerID(ownerID string) (*models.Establishment, error) {
	for _, e := range r.establishments {
		if e.OwnerID == ownerID {
			return e, nil
		}
	}
	return nil, nil
}

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (r *fakeServiceRepo) Create(svc *models.Service) error { r.services[svc.ID] = svc; return nil }
func (r *fakeServiceRepo) Update(svc *models.Service) error { r.services[svc.ID] = svc; return nil }
func (r *fakeServiceRepo) Delete(id string) error           { delete(r.services, id); return nil }
func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	return r.services[id], nil
}
func (r *fakeServiceRepo) GetByIDs(ids []string) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if s, ok := r.services[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (r *fakeServiceRepo) ListByEstablishment(establishmentID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.EstablishmentID == establishmentID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeGateway struct {
	preferenceErr error
	lastRequest   *models.PreferenceRequest
}

func (g *fakeGateway) CreatePreference(ctx context.Context, req models.PreferenceRequest) (*models.Preference, error) {
	g.lastRequest = &req
	if g.preferenceErr != nil {
		return nil, g.preferenceErr
	}
	return &models.Preference{ID: "pref-1", InitPoint: "https://gateway.test/checkout/pref-1"}, nil
}

func (g *fakeGateway) CreatePlanPreapproval(ctx context.Context, req models.PreapprovalRequest) (*models.Preference, error) {
	return &models.Preference{ID: "preapproval-1", InitPoint: "https://gateway.test/preapproval-1"}, nil
}

func (g *fakeGateway) GetPayment(ctx context.Context, id string) (*models.PaymentDetail, error) {
	return nil, fmt.Errorf("not implemented")
}

func (g *fakeGateway) GetPreapproval(ctx context.Context, id string) (*models.PreapprovalDetail, error) {
	return nil, fmt.Errorf("not implemented")
}

// testEngine wires an Engine over fresh fakes with one establishment, one
// employee available Mondays 09:00-18:00 and two catalog services.
type testEngine struct {
	engine   *Engine
	appts    *fakeAppointmentRepo
	avail    *fakeAvailabilityRepo
	gateway  *fakeGateway
	services *fakeServiceRepo
}

func newTestEngine(now time.Time) *testEngine {
	appts := newFakeAppointmentRepo()
	avail := newFakeAvailabilityRepo()
	gateway := &fakeGateway{}

	employees := &fakeEmployeeRepo{employees: map[string]*models.Employee{
		"emp-1": {ID: "emp-1", Name: "Carlos", EstablishmentID: "est-1"},
	}}
	establishments := &fakeEstablishmentRepo{establishments: map[string]*models.Establishment{
		"est-1": {ID: "est-1", Name: "Navalha de Ouro", OwnerID: "owner-1"},
	}}
	services := &fakeServiceRepo{services: map[string]*models.Service{
		"svc-cut":   {ID: "svc-cut", Name: "Corte", Price: 50, DurationMin: 30, EstablishmentID: "est-1"},
		"svc-beard": {ID: "svc-beard", Name: "Barba", Price: 35, DurationMin: 30, EstablishmentID: "est-1"},
	}}

	avail.Replace("emp-1", []models.AvailabilityDay{
		{DayOfWeek: 1, Intervals: []models.AvailabilityInterval{{Start: "09:00", End: "18:00"}}},
	})

	return &testEngine{
		engine: &Engine{
			Appointments:   appts,
			Availabilities: avail,
			Employees:      employees,
			Establishments: establishments,
			Services:       services,
			Gateway:        gateway,
			Granularity:    30 * time.Minute,
			Now:            func() time.Time { return now },
		},
		appts:    appts,
		avail:    avail,
		gateway:  gateway,
		services: services,
	}
}
