// Package httperror defines the error response body of the API.
package httperror

type Error struct {
	Message string `json:"error" example:"you must specify a simulation ID"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
