package models

// ErrorResponse - стандартная структура для ответа об ошибке в формате JSON.
// Тело вида {"error": "..."} - это wire-контракт, на который завязан клиент.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EmailResponse - ответ эндпоинта отправки письма оператору.
type EmailResponse struct {
	Success     bool        `json:"success"`
	EmailResult interface{} `json:"emailResult"`
}
