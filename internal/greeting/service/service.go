package service

import "fmt"

type MessageResponse struct {
	Message string `json:"message"`
}

type GreetingService struct{}

func NewGreetingService() *GreetingService {
	return &GreetingService{}
}

func (s *GreetingService) Welcome() MessageResponse {
	return MessageResponse{Message: "Welcome to Idyllic Python API!"}
}

// Greet uses the name exactly as received; no escaping or validation.
func (s *GreetingService) Greet(name string) MessageResponse {
	return MessageResponse{Message: fmt.Sprintf("Hello, %s!", name)}
}
