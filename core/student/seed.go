package student

// Seed returns the built-in directory used when no student collection has
// ever been persisted, or when the persisted one cannot be read.
func Seed() []Student {
	return []Student{
		{
			ID:                 "1",
			Name:               "ANA BEATRIZ SILVA COSTA",
			RegistrationNumber: "RA001",
			RGA:                "RGA987654",
			Shift:              ShiftMorning,
			Grade:              "5º A",
			PhotoURL:           "https://picsum.photos/seed/student1/300/400",
			Filiacao1:          "ADRIANA MARIA REGIS DA SILVA",
			Filiacao2:          "MANOEL DA COSTA",
			Telefone1:          "(11) 98888-7777",
			Telefone2:          "(11) 94444-5555",
			BirthDate:          "2012-10-23",
			Status:             StatusActive,
		},
		{
			ID:                 "2",
			Name:               "BERNARDO CASTRO DE SOUZA",
			RegistrationNumber: "RA002",
			RGA:                "RGA987655",
			Shift:              ShiftIntegral,
			Grade:              "1º A",
			PhotoURL:           "https://picsum.photos/seed/student2/300/400",
			Filiacao1:          "JOÃO DE SOUZA",
			Filiacao2:          "MARIA DE CASTRO",
			Telefone1:          "(11) 97777-6666",
			BirthDate:          "2012-05-12",
			Status:             StatusActive,
		},
		{
			ID:                 "3",
			Name:               "BRYAN ADRIANO MESSIAS",
			RegistrationNumber: "RA003",
			RGA:                "RGA987656",
			Shift:              ShiftAfternoon,
			Grade:              "4º A",
			PhotoURL:           "https://picsum.photos/seed/student3/300/400",
			Filiacao1:          "MARIA MESSIAS",
			Filiacao2:          "ROBERTO ADRIANO",
			Telefone1:          "(11) 96666-5555",
			Telefone2:          "(11) 91111-2222",
			Telefone3:          "(11) 93333-4444",
			BirthDate:          "2012-08-30",
			Status:             StatusActive,
		},
	}
}
