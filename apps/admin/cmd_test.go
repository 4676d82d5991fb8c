package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/escolabase/carometro/core"
	"github.com/escolabase/carometro/core/occurrence"
	"github.com/escolabase/carometro/core/student"
	emailsvc "github.com/escolabase/carometro/services/email"
	inmemkv "github.com/escolabase/carometro/storage/kv/inmem"
	"github.com/escolabase/carometro/storage/kvrepos"
	testutil "github.com/escolabase/carometro/tests"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	store := inmemkv.Open()
	stuRepo, err := kvrepos.NewStudentRepository(store, testutil.Logger{})
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	occRepo, err := kvrepos.NewOccurrenceRepository(store, testutil.Logger{})
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	out := new(bytes.Buffer)
	cli := &commandLine{
		out:    out,
		stuSvc: student.NewService(stuRepo),
		occSvc: occurrence.NewService(occRepo, stuRepo, emailsvc.NewConsoleServiceMock()),
	}
	return cli, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    string
}

func runTests(t *testing.T, cli *commandLine, out *bytes.Buffer, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(append([]string{"admin"}, tt.args...))
			switch {
			case tt.wantErr != nil:
				if err != tt.wantErr {
					t.Errorf("run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("run() error = %v, wantErrStr %q", err, tt.wantErrStr)
				}
			default:
				if err != nil {
					t.Errorf("run() error = %v", err)
				}
			}
			if tt.wantOut != "" && !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("run() output = %q, want it to contain %q", out.String(), tt.wantOut)
			}
		})
	}
}

func Test_commandLine_help(t *testing.T) {
	cli, out := setup(t)
	runTests(t, cli, out, []cliTest{
		{name: "no subcommand", args: nil, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"lol"}, wantErr: errHelp},
		{name: "showstudent: no id", args: []string{"showstudent"}, wantErr: errHelp},
		{name: "editstudent: no id", args: []string{"editstudent", "-name", "X"}, wantErr: errHelp},
		{name: "addoccurrence: no student", args: []string{"addoccurrence", "-title", "T"}, wantErr: errHelp},
		{name: "addgroup: no students", args: []string{"addgroup", "-title", "T"}, wantErr: errHelp},
		{name: "deloccurrence: no id", args: []string{"deloccurrence"}, wantErr: errHelp},
	})
}

func Test_commandLine_students(t *testing.T) {
	cli, out := setup(t)
	runTests(t, cli, out, []cliTest{
		{name: "list all", args: []string{"liststudents"}, wantOut: "3 student(s)"},
		{name: "list by shift", args: []string{"liststudents", "-shift", student.ShiftMorning}, wantOut: "1 student(s)"},
		{name: "show", args: []string{"showstudent", "-id", "1"}, wantOut: "ANA BEATRIZ SILVA COSTA"},
		{name: "show unknown", args: []string{"showstudent", "-id", "999"}, wantErr: student.ErrNotFound},
		{name: "edit as admin", args: []string{"editstudent", "-id", "1", "-grade", "6º A", "-as-name", "Diretora Silvia", "-as-role", "Admin"}, wantOut: "student 1 updated"},
		{name: "edit as teacher denied", args: []string{"editstudent", "-id", "1", "-grade", "7º A", "-as-name", "Prof. Eduardo"}, wantErr: core.ErrPermissionDenied},
		{name: "edited grade shows up", args: []string{"showstudent", "-id", "1"}, wantOut: "6º A"},
		{name: "edit with made-up role", args: []string{"editstudent", "-id", "1", "-grade", "8º A", "-as-name", "X", "-as-role", "Diretor"}, wantErrStr: `invalid role "Diretor" (valid: Admin, Teacher)`},
	})
}

func Test_commandLine_occurrences(t *testing.T) {
	cli, out := setup(t)
	runTests(t, cli, out, []cliTest{
		{name: "add", args: []string{"addoccurrence", "-student", "1", "-title", "Atraso", "-category", "Comportamental", "-date", "2024-01-10", "-as-name", "Prof. Eduardo"}, wantOut: "registered for student 1"},
		{name: "add bad date", args: []string{"addoccurrence", "-student", "1", "-title", "T", "-date", "10/01/2024"}, wantErrStr: `invalid date "10/01/2024": expected YYYY-MM-DD`},
		{name: "add unknown student", args: []string{"addoccurrence", "-student", "999", "-title", "T"}, wantErr: student.ErrNotFound},
		{name: "add group", args: []string{"addgroup", "-students", "1, 2,3", "-title", "Excursão", "-as-name", "Profa. Márcia"}, wantOut: "3 occurrence(s) registered in group"},
		{name: "list all", args: []string{"occurrences"}, wantOut: "4 occurrence(s)"},
		{name: "list by student", args: []string{"occurrences", "-student", "2"}, wantOut: "1 occurrence(s)"},
		{name: "add with made-up role", args: []string{"addoccurrence", "-student", "1", "-title", "T", "-as-role", "Aluno"}, wantErrStr: `invalid role "Aluno" (valid: Admin, Teacher)`},
	})
}

func Test_commandLine_export(t *testing.T) {
	cli, out := setup(t)

	if err := cli.run([]string{"admin", "addoccurrence", "-student", "2", "-title", "Atraso", "-as-name", "Prof. Eduardo"}); err != nil {
		t.Fatalf("addoccurrence failed: %v", err)
	}
	out.Reset()

	if err := cli.run([]string{"admin", "export"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	var dump struct {
		Students    []student.Student       `json:"students"`
		Occurrences []occurrence.Occurrence `json:"occurrences"`
	}
	if err := json.Unmarshal(out.Bytes(), &dump); err != nil {
		t.Fatalf("export is not valid JSON: %v\n%s", err, out.String())
	}
	if len(dump.Students) != len(student.Seed()) {
		t.Errorf("exported %d student(s), want %d", len(dump.Students), len(student.Seed()))
	}
	if len(dump.Occurrences) != 1 {
		t.Errorf("exported %d occurrence(s), want 1", len(dump.Occurrences))
	}
}

func Test_commandLine_deleteOccurrence(t *testing.T) {
	cli, out := setup(t)

	if err := cli.run([]string{"admin", "addoccurrence", "-student", "1", "-title", "Atraso", "-as-name", "Prof. Eduardo"}); err != nil {
		t.Fatalf("addoccurrence failed: %v", err)
	}
	occs, err := cli.occSvc.QueryByStudent("1")
	if err != nil || len(occs) != 1 {
		t.Fatalf("QueryByStudent() = %v, %v", occs, err)
	}
	id := occs[0].ID

	runTests(t, cli, out, []cliTest{
		{name: "other teacher denied", args: []string{"deloccurrence", "-id", id, "-as-name", "Profa. Márcia"}, wantErr: core.ErrPermissionDenied},
		{name: "author deletes", args: []string{"deloccurrence", "-id", id, "-as-name", "Prof. Eduardo"}, wantOut: "deleted"},
		{name: "already gone", args: []string{"deloccurrence", "-id", id, "-as-name", "Prof. Eduardo"}, wantErr: occurrence.ErrNotFound},
	})
}
