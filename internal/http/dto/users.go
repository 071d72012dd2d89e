package dto

import "userapi/internal/model"

// UserRequest is the body of create and update calls. Pointers make
// `required` check presence, so empty strings and a zero age are accepted.
type UserRequest struct {
	Name  *string `json:"name" binding:"required"`
	Email *string `json:"email" binding:"required"`
	Age   *uint32 `json:"age" binding:"required"`
}

func (r UserRequest) ToModel() model.User {
	return model.User{Name: *r.Name, Email: *r.Email, Age: *r.Age}
}

type ListUsersResponse struct {
	Users  []model.User `json:"users"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
