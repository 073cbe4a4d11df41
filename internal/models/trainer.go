package models

type TrainerSchedule struct {
	IDEntrenador int64  `json:"id_entrenador"`
	Nombre       string `json:"nombre"`
	Especialidad string `json:"especialidad"`
	NombreClase  string `json:"nombre_clase"`
	IDHorario    int64  `json:"id_horario"`
	DiaSemana    string `json:"dia_semana"`
}

type ClassDetails struct {
	Nombre           string `json:"nombre"`
	Descripcion      string `json:"descripcion"`
	Telefono         string `json:"telefono"`
	Correo           string `json:"correo"`
	NombreClase      string `json:"nombre_clase"`
	DescripcionClase string `json:"descripcion_clase"`
	Nivel            string `json:"nivel"`
	DiaSemana        string `json:"dia_semana"`
	HoraInicio       string `json:"hora_inicio"`
	HoraFin          string `json:"hora_fin"`
}
