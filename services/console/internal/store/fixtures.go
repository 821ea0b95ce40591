package store

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"metro-console/services/console/internal/entity"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the seed data every store starts from.
type Fixtures struct {
	Trains        []entity.Train        `yaml:"trains" json:"trains"`
	Staff         []entity.Staff        `yaml:"staff" json:"staff"`
	Schedules     []entity.Schedule     `yaml:"schedules" json:"schedules"`
	Stations      []entity.Station      `yaml:"stations" json:"stations"`
	Notifications []entity.Notification `yaml:"notifications" json:"notifications"`
}

// DefaultFixtures returns the built-in seed data.
func DefaultFixtures() *Fixtures {
	f, err := LoadFixtures(bytes.NewReader(defaultFixtures))
	if err != nil {
		panic(fmt.Sprintf("store: embedded fixtures are invalid: %v", err))
	}
	return f
}

// LoadFixtures decodes and validates a YAML fixture document.
func LoadFixtures(r io.Reader) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFixturesFile reads fixtures from path, or returns the built-in set
// when path is empty.
func LoadFixturesFile(path string) (*Fixtures, error) {
	if path == "" {
		return DefaultFixtures(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer file.Close()
	return LoadFixtures(file)
}

// Validate checks that ids are unique within each collection and every
// status is one the console knows.
func (f *Fixtures) Validate() error {
	var errs []error
	check := func(kind string, ids []string) {
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			switch {
			case id == "":
				errs = append(errs, fmt.Errorf("%s: empty id", kind))
			case seen[id]:
				errs = append(errs, fmt.Errorf("%s: duplicate id %q", kind, id))
			}
			seen[id] = true
		}
	}

	ids := make([]string, 0, len(f.Trains))
	for _, t := range f.Trains {
		ids = append(ids, t.ID)
		if !t.Status.Valid() {
			errs = append(errs, fmt.Errorf("trains: %s has invalid status %q", t.ID, t.Status))
		}
	}
	check("trains", ids)

	ids = ids[:0]
	for _, m := range f.Staff {
		ids = append(ids, m.ID)
		if !m.Status.Valid() {
			errs = append(errs, fmt.Errorf("staff: %s has invalid status %q", m.ID, m.Status))
		}
	}
	check("staff", ids)

	ids = ids[:0]
	for _, sc := range f.Schedules {
		ids = append(ids, sc.ID)
		if !sc.Status.Valid() {
			errs = append(errs, fmt.Errorf("schedules: %s has invalid status %q", sc.ID, sc.Status))
		}
	}
	check("schedules", ids)

	ids = ids[:0]
	for _, st := range f.Stations {
		ids = append(ids, st.ID)
		if !st.Status.Valid() {
			errs = append(errs, fmt.Errorf("stations: %s has invalid status %q", st.ID, st.Status))
		}
	}
	check("stations", ids)

	ids = ids[:0]
	for _, n := range f.Notifications {
		ids = append(ids, n.ID)
		if !n.Type.Valid() {
			errs = append(errs, fmt.Errorf("notifications: %s has invalid type %q", n.ID, n.Type))
		}
	}
	check("notifications", ids)

	return errors.Join(errs...)
}

// seed builds a fresh state tree. Collections are copied so the fixtures
// are never aliased by a live state.
func (f *Fixtures) seed(now time.Time) State {
	trains := make([]entity.Train, len(f.Trains))
	for i, t := range f.Trains {
		t.LastUpdated = now
		trains[i] = t
	}
	notifications := make([]entity.Notification, len(f.Notifications))
	for i, n := range f.Notifications {
		n.Timestamp = now
		notifications[i] = n
	}

	return State{
		App: AppState{
			Theme:         entity.ThemeLight,
			Notifications: notifications,
		},
		Trains:    TrainState{Trains: trains},
		Staff:     StaffState{Staff: append([]entity.Staff(nil), f.Staff...)},
		Schedules: ScheduleState{Schedules: append([]entity.Schedule(nil), f.Schedules...)},
		Stations:  StationState{Stations: append([]entity.Station(nil), f.Stations...)},
	}
}
