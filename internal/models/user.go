package models

type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	SecondName   string `json:"second_name"`
	PasswordHash string `json:"-"`
	Age          int    `json:"age"`
}

// FullName is what templates show next to a post or profile.
func (u *User) FullName() string {
	if u.SecondName == "" {
		return u.Name
	}
	return u.Name + " " + u.SecondName
}
