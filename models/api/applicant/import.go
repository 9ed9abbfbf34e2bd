package applicantapimodels

type ImportRowError struct {
	Row   int    `json:"row"`   // Номер строки в файле
	Error string `json:"error"` // Причина пропуска строки
}

type ImportResult struct {
	Added     int              `json:"added"`      // Количество добавленных кандидатов
	RowErrors []ImportRowError `json:"row_errors"` // Пропущенные строки
}
