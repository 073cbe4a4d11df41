package models

type ProgressEntry struct {
	ID           int64    `json:"id"`
	Repeticiones int      `json:"repeticiones"`
	Peso         *float64 `json:"peso"`
	Fecha        string   `json:"fecha"`
	NameES       string   `json:"name_es"`
}
