package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type StatusResponse struct {
	Configured bool   `json:"configured"`
	Mode       string `json:"mode"`
}
