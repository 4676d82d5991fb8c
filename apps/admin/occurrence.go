package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/escolabase/carometro/core"
	"github.com/escolabase/carometro/core/auth"
	"github.com/escolabase/carometro/core/occurrence"
)

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}

func (cli *commandLine) addOccurrence(actor auth.User, studentID, title, desc, category, date string) error {
	d, err := parseDate(date)
	if err != nil {
		return err
	}
	occ, err := cli.occSvc.Add(actor, occurrence.NewOccurrence{
		StudentID:   studentID,
		Date:        d,
		Title:       title,
		Description: desc,
		Category:    category,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "occurrence %s registered for student %s\n", occ.ID, occ.StudentID)
	return nil
}

func (cli *commandLine) addGroupOccurrence(actor auth.User, studentIDs, title, desc, category, date string) error {
	d, err := parseDate(date)
	if err != nil {
		return err
	}
	ids := make([]string, 0)
	for _, id := range strings.Split(studentIDs, ",") {
		if id = core.CleanString(id); id != "" {
			ids = append(ids, id)
		}
	}
	occs, err := cli.occSvc.AddGroup(actor, occurrence.NewGroupOccurrence{
		StudentIDs:  ids,
		Date:        d,
		Title:       title,
		Description: desc,
		Category:    category,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d occurrence(s) registered in group %s\n", len(occs), occs[0].GroupID)
	return nil
}

func (cli *commandLine) deleteOccurrence(actor auth.User, id string) error {
	if err := cli.occSvc.Delete(actor, id); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "occurrence %s deleted\n", id)
	return nil
}

func (cli *commandLine) listOccurrences(studentID, groupID string) error {
	var occs []occurrence.Occurrence
	var err error
	switch {
	case studentID != "":
		occs, err = cli.occSvc.QueryByStudent(studentID)
	case groupID != "":
		occs, err = cli.occSvc.QueryByGroup(groupID)
	default:
		occs, err = cli.occSvc.QueryAll()
	}
	if err != nil {
		return err
	}
	for _, occ := range occs {
		group := ""
		if occ.GroupID != "" {
			group = " grupo:" + occ.GroupID
		}
		fmt.Fprintf(cli.out, "%s\t%s\t%s\t%s\taluno:%s%s\tpor %s\n",
			occ.ID, occ.Date.Format("2006-01-02"), occ.Category, occ.Title, occ.StudentID, group, occ.RegisteredBy)
	}
	fmt.Fprintf(cli.out, "%d occurrence(s)\n", len(occs))
	return nil
}
