package models

import (
	"time"
)

// ProgramTask is one scheduled study block. Day holds one of the fixed
// weekday labels (see planner.Weekdays); Duration is in minutes.
type ProgramTask struct {
	ID        string `json:"id"`
	Lesson    string `json:"lesson"`
	Topic     string `json:"topic"`
	Duration  int    `json:"duration"`
	Completed bool   `json:"completed"`
	Day       string `json:"day"`
}

// Program is a weekly study plan owned by a profile. ExamGoal is "TYT",
// "AYT" or "TYT + AYT"; DailyHours is a band label like "1-2" or "4+".
type Program struct {
	ID         string        `json:"id"`
	ProfileID  string        `json:"profile_id"`
	ExamGoal   string        `json:"exam_goal"`
	DailyHours string        `json:"daily_hours"`
	StudyDays  int           `json:"study_days"`
	Tasks      []ProgramTask `json:"tasks"`
	CreatedAt  time.Time     `json:"created_at"`
}

type ProgramCreate struct {
	ProfileID  string `json:"profile_id"`
	ExamGoal   string `json:"exam_goal"`
	DailyHours string `json:"daily_hours"`
	StudyDays  int    `json:"study_days"`
}

// ProgramUpdate is a partial patch; nil fields are left untouched. A non-nil
// Tasks replaces the whole task list, there is no per-task merge.
type ProgramUpdate struct {
	ExamGoal   *string        `json:"exam_goal"`
	DailyHours *string        `json:"daily_hours"`
	StudyDays  *int           `json:"study_days"`
	Tasks      *[]ProgramTask `json:"tasks"`
}
