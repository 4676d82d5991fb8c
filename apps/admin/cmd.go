package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/escolabase/carometro/core/auth"
	"github.com/escolabase/carometro/core/occurrence"
	"github.com/escolabase/carometro/core/student"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out    io.Writer
	stuSvc *student.Service
	occSvc *occurrence.Service
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  liststudents  [-shift SHIFT] [-grade GRADE]       - list students ('Todos' matches all)")
	fmt.Fprintln(cli.out, "  showstudent   -id ID                              - show one student and their occurrences")
	fmt.Fprintln(cli.out, "  editstudent   -id ID [field flags...]             - replace a student record (admin only)")
	fmt.Fprintln(cli.out, "  addoccurrence -student ID -title T -category C    - register an occurrence")
	fmt.Fprintln(cli.out, "  addgroup      -students ID,ID,.. -title T -category C - register a group occurrence")
	fmt.Fprintln(cli.out, "  deloccurrence -id ID                              - delete an occurrence (author or admin)")
	fmt.Fprintln(cli.out, "  occurrences   [-student ID | -group GID]          - list occurrences")
	fmt.Fprintln(cli.out, "  export                                            - dump all students and occurrences as JSON")
	fmt.Fprintln(cli.out, "")
	fmt.Fprintln(cli.out, "Every command accepts -as-name and -as-role (Admin|Teacher) for the acting user.")
}

// actorFlags registers the acting-user flags on fs. The identity is
// pre-trusted: it comes from whoever runs the tool, not from authentication.
func actorFlags(fs *flag.FlagSet) (name, role *string) {
	name = fs.String("as-name", "", "display name of the acting user")
	role = fs.String("as-role", auth.RoleTeacher, "role of the acting user (Admin|Teacher)")
	return name, role
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "liststudents":
		fs := flag.NewFlagSet("liststudents", flag.ExitOnError)
		shift := fs.String("shift", student.ShiftAll, "shift filter")
		grade := fs.String("grade", student.GradeAll, "grade filter")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listStudents(*shift, *grade)

	case "showstudent":
		fs := flag.NewFlagSet("showstudent", flag.ExitOnError)
		id := fs.String("id", "", "student id")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *id == "" {
			fs.Usage()
			return errHelp
		}
		return cli.showStudent(*id)

	case "editstudent":
		fs := flag.NewFlagSet("editstudent", flag.ExitOnError)
		id := fs.String("id", "", "student id")
		asName, asRole := actorFlags(fs)
		flds := studentFieldFlags(fs)
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *id == "" {
			fs.Usage()
			return errHelp
		}
		usr, err := actor(*asName, *asRole)
		if err != nil {
			return err
		}
		return cli.editStudent(usr, fs, *id, flds)

	case "addoccurrence":
		fs := flag.NewFlagSet("addoccurrence", flag.ExitOnError)
		studentID := fs.String("student", "", "student id")
		title := fs.String("title", "", "occurrence title")
		desc := fs.String("desc", "", "occurrence description")
		category := fs.String("category", occurrence.CategoryOther, "occurrence category")
		date := fs.String("date", "", "occurrence date (YYYY-MM-DD; default today)")
		asName, asRole := actorFlags(fs)
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *studentID == "" || *title == "" {
			fs.Usage()
			return errHelp
		}
		usr, err := actor(*asName, *asRole)
		if err != nil {
			return err
		}
		return cli.addOccurrence(usr, *studentID, *title, *desc, *category, *date)

	case "addgroup":
		fs := flag.NewFlagSet("addgroup", flag.ExitOnError)
		studentIDs := fs.String("students", "", "comma-separated student ids")
		title := fs.String("title", "", "occurrence title")
		desc := fs.String("desc", "", "occurrence description")
		category := fs.String("category", occurrence.CategoryOther, "occurrence category")
		date := fs.String("date", "", "occurrence date (YYYY-MM-DD; default today)")
		asName, asRole := actorFlags(fs)
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *studentIDs == "" || *title == "" {
			fs.Usage()
			return errHelp
		}
		usr, err := actor(*asName, *asRole)
		if err != nil {
			return err
		}
		return cli.addGroupOccurrence(usr, *studentIDs, *title, *desc, *category, *date)

	case "deloccurrence":
		fs := flag.NewFlagSet("deloccurrence", flag.ExitOnError)
		id := fs.String("id", "", "occurrence id")
		asName, asRole := actorFlags(fs)
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *id == "" {
			fs.Usage()
			return errHelp
		}
		usr, err := actor(*asName, *asRole)
		if err != nil {
			return err
		}
		return cli.deleteOccurrence(usr, *id)

	case "occurrences":
		fs := flag.NewFlagSet("occurrences", flag.ExitOnError)
		studentID := fs.String("student", "", "filter by student id")
		groupID := fs.String("group", "", "filter by group id")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listOccurrences(*studentID, *groupID)

	case "export":
		return cli.exportData()

	default:
		cli.printUsage()
		return errHelp
	}
}

// exportData dumps the whole dataset in the same shape the store persists,
// usable as a backup or for seeding another instance.
func (cli *commandLine) exportData() error {
	students, err := cli.stuSvc.QueryAll()
	if err != nil {
		return err
	}
	occs, err := cli.occSvc.QueryAll()
	if err != nil {
		return err
	}
	dump := struct {
		Students    []student.Student       `json:"students"`
		Occurrences []occurrence.Occurrence `json:"occurrences"`
	}{students, occs}

	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return enc.Encode(dump)
}

func actor(name, role string) (auth.User, error) {
	if !auth.ValidRole(role) {
		return auth.User{}, fmt.Errorf("invalid role %q (valid: %s)", role, strings.Join(auth.Roles, ", "))
	}
	return auth.User{Name: name, Role: role}, nil
}
