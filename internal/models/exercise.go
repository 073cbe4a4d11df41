package models

type Exercise struct {
	ID         int64  `json:"id"`
	NameES     string `json:"name_es"`
	BodyPartES string `json:"body_part_es"`
	TargetES   string `json:"target_es"`
}

type ExerciseSummary struct {
	ID     int64  `json:"id"`
	NameES string `json:"name_es"`
}

type RoutineDay struct {
	Day       int        `json:"day"`
	Exercises []Exercise `json:"exercises"`
}
