package auth

import "testing"

type authoredStub string

func (a authoredStub) RegisteredByName() string { return string(a) }

func TestCanDeleteOccurrence(t *testing.T) {
	tests := []struct {
		name         string
		user         User
		registeredBy string
		want         bool
	}{
		{name: "admin may delete anything", user: User{Name: "Diretora Silvia", Role: RoleAdmin}, registeredBy: "Prof. Eduardo", want: true},
		{name: "admin may delete own", user: User{Name: "Diretora Silvia", Role: RoleAdmin}, registeredBy: "Diretora Silvia", want: true},
		{name: "teacher may delete own", user: User{Name: "Prof. Eduardo", Role: RoleTeacher}, registeredBy: "Prof. Eduardo", want: true},
		{name: "teacher may not delete others'", user: User{Name: "Prof. Eduardo", Role: RoleTeacher}, registeredBy: "Profa. Márcia", want: false},
		{name: "name match is exact", user: User{Name: "prof. eduardo", Role: RoleTeacher}, registeredBy: "Prof. Eduardo", want: false},
		{name: "unknown role with matching name", user: User{Name: "Prof. Eduardo", Role: "Visitor"}, registeredBy: "Prof. Eduardo", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanDeleteOccurrence(tt.user, authoredStub(tt.registeredBy)); got != tt.want {
				t.Errorf("CanDeleteOccurrence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{role: RoleAdmin, want: true},
		{role: RoleTeacher, want: true},
		{role: "admin", want: false},
		{role: "Diretor", want: false},
		{role: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := ValidRole(tt.role); got != tt.want {
				t.Errorf("ValidRole(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestCanEditStudent(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{name: "admin", user: User{Name: "Diretora Silvia", Role: RoleAdmin}, want: true},
		{name: "teacher", user: User{Name: "Prof. Eduardo", Role: RoleTeacher}, want: false},
		{name: "no role", user: User{Name: "Anon"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEditStudent(tt.user); got != tt.want {
				t.Errorf("CanEditStudent() = %v, want %v", got, tt.want)
			}
		})
	}
}
