package planner

import (
	"github.com/google/uuid"

	"github.com/izlekapp/izlek_backend_v1/internal/models"
)

// Weekdays are the fixed day labels a program can schedule, Monday first.
var Weekdays = []string{"Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi", "Pazar"}

type taskTemplate struct {
	Lesson   string
	Topic    string
	Duration int // minutes
}

var taskTemplates = map[string][]taskTemplate{
	"TYT": {
		{Lesson: "Matematik", Topic: "Temel Kavramlar", Duration: 45},
		{Lesson: "Türkçe", Topic: "Sözcük - Cümle", Duration: 30},
		{Lesson: "Fen", Topic: "Fizik - Hareket", Duration: 40},
		{Lesson: "Sosyal", Topic: "Tarih - İnkılap", Duration: 35},
	},
	"AYT": {
		{Lesson: "Matematik", Topic: "İntegral", Duration: 50},
		{Lesson: "Fizik", Topic: "Elektrik", Duration: 45},
		{Lesson: "Kimya", Topic: "Organik", Duration: 40},
		{Lesson: "Biyoloji", Topic: "Hücre", Duration: 35},
	},
	"TYT + AYT": {
		{Lesson: "TYT Matematik", Topic: "Temel Matematik", Duration: 40},
		{Lesson: "AYT Matematik", Topic: "İleri Matematik", Duration: 40},
		{Lesson: "Türkçe", Topic: "Okuma - Anlama", Duration: 30},
		{Lesson: "Fen", Topic: "Fizik & Kimya", Duration: 35},
	},
}

const tasksPerDay = 2

// GenerateStarterTasks builds the initial weekly task list for a new
// program: the first two templates of the exam goal's set, once per study
// day. Unknown goals fall back to the TYT set, and studyDays outside 1..7 is
// clamped rather than rejected. dailyHours is accepted for parity with the
// create payload but does not affect the starter plan yet.
func GenerateStarterTasks(examGoal, dailyHours string, studyDays int) []models.ProgramTask {
	templates, ok := taskTemplates[examGoal]
	if !ok {
		templates = taskTemplates["TYT"]
	}

	n := studyDays
	if n > len(Weekdays) {
		n = len(Weekdays)
	}
	if n < 0 {
		n = 0
	}

	tasks := make([]models.ProgramTask, 0, n*tasksPerDay)
	for _, day := range Weekdays[:n] {
		for _, tpl := range templates[:tasksPerDay] {
			tasks = append(tasks, models.ProgramTask{
				ID:       uuid.NewString(),
				Lesson:   tpl.Lesson,
				Topic:    tpl.Topic,
				Duration: tpl.Duration,
				Day:      day,
			})
		}
	}
	return tasks
}
