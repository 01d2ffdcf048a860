package models

type UserRole string

const (
	UserRoleAdmin       UserRole = "ADMIN"
	UserRoleCurator     UserRole = "CURATOR"
	UserRoleInterviewer UserRole = "INTERVIEWER"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:       "Администратор",
	UserRoleCurator:     "Куратор",
	UserRoleInterviewer: "Собеседующий",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsCurator() bool {
	return r == UserRoleCurator || r == UserRoleAdmin
}
