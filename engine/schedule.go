package engine

import (
	"fmt"
)

// ScheduleId identifies a schedule. All implementing types must be comparable.
type ScheduleId interface {
	fmt.Stringer
	isSchedule()
}

type scheduleId struct {
	name string
}

func (*scheduleId) isSchedule() {}

func (s *scheduleId) String() string {
	return s.name
}

// MakeScheduleId creates a new unique ScheduleId.
// The name passed to the schedule is used for debugging
func MakeScheduleId(name string) ScheduleId {
	return &scheduleId{name: name}
}

// Schedule is an ordered list of systems. Systems run in the order they were added.
type Schedule struct {
	id      ScheduleId
	systems []*preparedSystem
}

func NewSchedule(id ScheduleId) *Schedule {
	return &Schedule{id: id}
}

func (s *Schedule) Id() ScheduleId {
	return s.id
}

// Len returns the number of systems in this schedule.
func (s *Schedule) Len() int {
	return len(s.systems)
}

func (s *Schedule) addSystem(system *preparedSystem) {
	s.systems = append(s.systems, system)
}
