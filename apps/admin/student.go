package main

import (
	"flag"
	"fmt"

	"github.com/escolabase/carometro/core/auth"
	"github.com/escolabase/carometro/core/student"
)

// studentFields maps flag names to setters on the record being edited.
type studentFields map[string]*string

func studentFieldFlags(fs *flag.FlagSet) studentFields {
	return studentFields{
		"name":      fs.String("name", "", "student name"),
		"ra":        fs.String("ra", "", "registration number (RA)"),
		"rga":       fs.String("rga", "", "secondary registration id (RGA)"),
		"shift":     fs.String("shift", "", "shift"),
		"grade":     fs.String("grade", "", "grade"),
		"photo":     fs.String("photo", "", "photo URL"),
		"filiacao1": fs.String("filiacao1", "", "primary guardian name"),
		"filiacao2": fs.String("filiacao2", "", "secondary guardian name"),
		"telefone1": fs.String("telefone1", "", "primary contact number"),
		"telefone2": fs.String("telefone2", "", "secondary contact number"),
		"telefone3": fs.String("telefone3", "", "tertiary contact number"),
		"birthdate": fs.String("birthdate", "", "birth date (YYYY-MM-DD)"),
		"status":    fs.String("status", "", "student status"),
	}
}

func (flds studentFields) apply(name string, stu *student.Student) {
	val := *flds[name]
	switch name {
	case "name":
		stu.Name = val
	case "ra":
		stu.RegistrationNumber = val
	case "rga":
		stu.RGA = val
	case "shift":
		stu.Shift = val
	case "grade":
		stu.Grade = val
	case "photo":
		stu.PhotoURL = val
	case "filiacao1":
		stu.Filiacao1 = val
	case "filiacao2":
		stu.Filiacao2 = val
	case "telefone1":
		stu.Telefone1 = val
	case "telefone2":
		stu.Telefone2 = val
	case "telefone3":
		stu.Telefone3 = val
	case "birthdate":
		stu.BirthDate = val
	case "status":
		stu.Status = val
	}
}

func (cli *commandLine) listStudents(shift, grade string) error {
	students, err := cli.stuSvc.Filter(shift, grade)
	if err != nil {
		return err
	}
	for _, stu := range students {
		fmt.Fprintf(cli.out, "%s\t%s\t%s\t%s\t%s\n", stu.ID, stu.Name, stu.Shift, stu.Grade, stu.Status)
	}
	fmt.Fprintf(cli.out, "%d student(s)\n", len(students))
	return nil
}

func (cli *commandLine) showStudent(id string) error {
	stu, err := cli.stuSvc.GetByID(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s (RA %s / RGA %s)\n", stu.Name, stu.RegistrationNumber, stu.RGA)
	fmt.Fprintf(cli.out, "  %s - %s - %s - born %s\n", stu.Shift, stu.Grade, stu.Status, stu.BirthDate)
	fmt.Fprintf(cli.out, "  filiação: %s / %s\n", stu.Filiacao1, stu.Filiacao2)
	fmt.Fprintf(cli.out, "  contatos: %s %s %s\n", stu.Telefone1, stu.Telefone2, stu.Telefone3)

	occs, err := cli.occSvc.QueryByStudent(id)
	if err != nil {
		return err
	}
	for _, occ := range occs {
		fmt.Fprintf(cli.out, "  [%s] %s: %s (por %s)\n", occ.Date.Format("2006-01-02"), occ.Category, occ.Title, occ.RegisteredBy)
	}
	return nil
}

// editStudent performs a full-record replace: the current record is loaded,
// the fields given on the command line are substituted and the whole record
// is written back. The record id itself is immutable.
func (cli *commandLine) editStudent(actor auth.User, fs *flag.FlagSet, id string, flds studentFields) error {
	stu, err := cli.stuSvc.GetByID(id)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if _, ok := flds[f.Name]; ok {
			flds.apply(f.Name, &stu)
		}
	})
	if _, err := cli.stuSvc.Replace(actor, stu); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "student %s updated\n", id)
	return nil
}
