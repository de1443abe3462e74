package models

// Response is the JSON envelope shared by every endpoint. Ok mirrors the
// HTTP status class; exactly one of Data and Error carries meaning.
type Response struct {
	Ok      bool        `json:"ok"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{
		Ok:   true,
		Data: data,
	}
}

func ErrorResponse(err string) Response {
	return Response{
		Ok:    false,
		Error: err,
	}
}

func ErrorResponseWithDetails(err string, details interface{}) Response {
	return Response{
		Ok:      false,
		Error:   err,
		Details: details,
	}
}
