package requests

type GobarberCreateSession struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
