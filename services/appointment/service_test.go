package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"meetcure/calendar"
	"meetcure/models"
)

type fakeApptRepo struct {
	appts map[string]*models.Appointment
	next  int
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appts: make(map[string]*models.Appointment)}
}

func (f *fakeApptRepo) Create(_ context.Context, appt *models.Appointment) error {
	f.next++
	if appt.ID == "" {
		appt.ID = "appt-" + string(rune('0'+f.next))
	}
	appt.CreatedAt = time.Now()
	stored := *appt
	f.appts[appt.ID] = &stored
	return nil
}

func (f *fakeApptRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	if a, ok := f.appts[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeApptRepo) GetByPatient(_ context.Context, patientID string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, a := range f.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) GetByDoctor(_ context.Context, doctorID string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, a := range f.appts {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) UpdateStatus(_ context.Context, id, status string) error {
	a, ok := f.appts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	a.Status = status
	return nil
}

// fakeAvailRepo tracks a single doctor's slots per date.
type fakeAvailRepo struct {
	slots map[string][]string // date -> slots
}

func newFakeAvailRepo() *fakeAvailRepo {
	return &fakeAvailRepo{slots: make(map[string][]string)}
}

func (f *fakeAvailRepo) Upsert(_ context.Context, av *models.Availability) (*models.Availability, error) {
	f.slots[av.Date] = av.Slots
	return av, nil
}

func (f *fakeAvailRepo) GetByDoctor(_ context.Context, _ string) ([]models.Availability, error) {
	return nil, nil
}

func (f *fakeAvailRepo) GetByDoctorAndDate(_ context.Context, _, date string) (*models.Availability, error) {
	if s, ok := f.slots[date]; ok {
		return &models.Availability{Date: date, Slots: s}, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAvailRepo) DeleteByDoctorAndDate(_ context.Context, _, date string) error {
	delete(f.slots, date)
	return nil
}

func (f *fakeAvailRepo) RemoveSlot(_ context.Context, _, date, slot string) error {
	for i, s := range f.slots[date] {
		if s == slot {
			f.slots[date] = append(f.slots[date][:i], f.slots[date][i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeAvailRepo) AddSlot(_ context.Context, _, date, slot string) error {
	for _, s := range f.slots[date] {
		if s == slot {
			return nil
		}
	}
	f.slots[date] = append(f.slots[date], slot)
	return nil
}

// recordingCache counts availability invalidations per doctor.
type recordingCache struct {
	invalidated []string
}

func (r *recordingCache) Invalidate(_ context.Context, doctorID string) {
	r.invalidated = append(r.invalidated, doctorID)
}

type recordingScheduler struct {
	scheduled []time.Time
}

func (r *recordingScheduler) Schedule(_ context.Context, _ *models.Appointment, at time.Time) error {
	r.scheduled = append(r.scheduled, at)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.May, 1, 8, 0, 0, 0, time.Local)
}

func newService(avail *fakeAvailRepo, appts *fakeApptRepo, sched ReminderScheduler) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo:         appts,
		Availability: avail,
		Reminders:    sched,
		Now:          fixedNow,
	}
}

func TestBookConsumesSlot(t *testing.T) {
	avail := newFakeAvailRepo()
	avail.slots["2026-05-02"] = []string{"9:00 AM", "10:00 AM"}
	appts := newFakeApptRepo()
	sched := &recordingScheduler{}
	svc := newService(avail, appts, sched)

	appt, err := svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "doc-1",
		Date:     "2026-05-02",
		Time:     "9:00 AM",
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if appt.Status != models.AppointmentConfirmed {
		t.Errorf("status = %q, want confirmed", appt.Status)
	}

	remaining := avail.slots["2026-05-02"]
	if len(remaining) != 1 || remaining[0] != "10:00 AM" {
		t.Errorf("remaining slots = %v, want [10:00 AM]", remaining)
	}

	// Reminder scheduled one hour before 9:00 AM.
	if len(sched.scheduled) != 1 {
		t.Fatalf("scheduled reminders = %d, want 1", len(sched.scheduled))
	}
	want := time.Date(2026, time.May, 2, 8, 0, 0, 0, time.Local)
	if !sched.scheduled[0].Equal(want) {
		t.Errorf("reminder at %v, want %v", sched.scheduled[0], want)
	}

	// The consumed slot cannot be booked twice.
	_, err = svc.Book(context.Background(), "pat-2", models.BookAppointmentRequest{
		DoctorID: "doc-1",
		Date:     "2026-05-02",
		Time:     "9:00 AM",
	})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("double booking err = %v, want ErrSlotUnavailable", err)
	}
}

func TestBookRejectsPastAndMalformed(t *testing.T) {
	avail := newFakeAvailRepo()
	avail.slots["2026-04-30"] = []string{"9:00 AM"}
	svc := newService(avail, newFakeApptRepo(), nil)

	_, err := svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "doc-1", Date: "2026-04-30", Time: "9:00 AM",
	})
	if !errors.Is(err, ErrInPast) {
		t.Errorf("past booking err = %v, want ErrInPast", err)
	}

	_, err = svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "doc-1", Date: "2026-05-02", Time: "9 o'clock",
	})
	if !errors.Is(err, calendar.ErrInvalidClock) {
		t.Errorf("malformed clock err = %v, want ErrInvalidClock", err)
	}

	// Day-first dates must fail as a typed validation error, not fall
	// through to the generic 500 path.
	_, err = svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "doc-1", Date: "13/05/2026", Time: "9:00 AM",
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("malformed date err = %v, want ErrInvalidDate", err)
	}
}

func TestListDerivesCompletedStatus(t *testing.T) {
	appts := newFakeApptRepo()
	svc := newService(newFakeAvailRepo(), appts, nil)

	seed := []*models.Appointment{
		{ID: "a1", PatientID: "pat-1", DoctorID: "doc-1", Date: "2026-04-30", Time: "3:00 PM", Status: models.AppointmentConfirmed},
		{ID: "a2", PatientID: "pat-1", DoctorID: "doc-1", Date: "2026-05-02", Time: "9:00 AM", Status: models.AppointmentConfirmed},
		{ID: "a3", PatientID: "pat-1", DoctorID: "doc-1", Date: "2026-04-29", Time: "9:00 AM", Status: models.AppointmentCancelled},
	}
	for _, a := range seed {
		appts.appts[a.ID] = a
	}

	got, err := svc.ListForPatient(context.Background(), "pat-1")
	if err != nil {
		t.Fatalf("ListForPatient: %v", err)
	}

	byID := map[string]string{}
	for _, a := range got {
		byID[a.ID] = a.Status
	}
	if byID["a1"] != models.AppointmentCompleted {
		t.Errorf("a1 status = %q, want completed", byID["a1"])
	}
	if byID["a2"] != models.AppointmentConfirmed {
		t.Errorf("a2 status = %q, want confirmed", byID["a2"])
	}
	if byID["a3"] != models.AppointmentCancelled {
		t.Errorf("a3 status = %q, want cancelled", byID["a3"])
	}
}

func TestCancelRestoresSlot(t *testing.T) {
	avail := newFakeAvailRepo()
	avail.slots["2026-05-02"] = []string{"9:00 AM"}
	appts := newFakeApptRepo()
	svc := newService(avail, appts, nil)

	appt, err := svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "doc-1", Date: "2026-05-02", Time: "9:00 AM",
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	// A stranger cannot cancel.
	if err := svc.Cancel(context.Background(), "pat-2", models.RolePatient, appt.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger cancel err = %v, want ErrForbidden", err)
	}

	// The booked doctor can.
	if err := svc.Cancel(context.Background(), "doc-1", models.RoleDoctor, appt.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if got := avail.slots["2026-05-02"]; len(got) != 1 || got[0] != "9:00 AM" {
		t.Errorf("slots after cancel = %v, want [9:00 AM]", got)
	}

	if err := svc.Cancel(context.Background(), "doc-1", models.RoleDoctor, appt.ID); !errors.Is(err, ErrAlreadyCancelled) {
		t.Errorf("second cancel err = %v, want ErrAlreadyCancelled", err)
	}

	if err := svc.Cancel(context.Background(), "doc-1", models.RoleDoctor, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing cancel err = %v, want ErrNotFound", err)
	}
}

// Booking and cancelling both mutate slots behind the availability
// read cache, so each must drop the doctor's cached snapshot.
func TestSlotMutationsInvalidateCache(t *testing.T) {
	avail := newFakeAvailRepo()
	avail.slots["2026-05-02"] = []string{"9:00 AM"}
	cache := &recordingCache{}
	svc := newService(avail, newFakeApptRepo(), nil)
	svc.Cache = cache

	appt, err := svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "doc-1", Date: "2026-05-02", Time: "9:00 AM",
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "doc-1" {
		t.Fatalf("invalidations after Book = %v, want [doc-1]", cache.invalidated)
	}

	// A rejected booking touches no slots and must leave the cache alone.
	if _, err := svc.Book(context.Background(), "pat-2", models.BookAppointmentRequest{
		DoctorID: "doc-1", Date: "2026-05-02", Time: "9:00 AM",
	}); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("double booking err = %v, want ErrSlotUnavailable", err)
	}
	if len(cache.invalidated) != 1 {
		t.Errorf("invalidations after rejected booking = %d, want 1", len(cache.invalidated))
	}

	if err := svc.Cancel(context.Background(), "pat-1", models.RolePatient, appt.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if len(cache.invalidated) != 2 {
		t.Errorf("invalidations after Cancel = %d, want 2", len(cache.invalidated))
	}
}
