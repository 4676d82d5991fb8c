package main

import (
	"fmt"
	"log"
	"os"

	"github.com/escolabase/carometro/core"
	"github.com/escolabase/carometro/core/occurrence"
	"github.com/escolabase/carometro/core/student"
	emailsvc "github.com/escolabase/carometro/services/email"
	logsvc "github.com/escolabase/carometro/services/logger"
	boltkv "github.com/escolabase/carometro/storage/kv/bolt"
	"github.com/escolabase/carometro/storage/kvrepos"
)

func main() {
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
	)
	logger.Enable(!(core.Conf.GetBool("debug") || core.Conf.GetBool("testMode")))

	// set up the persisted store
	store, err := boltkv.Open(core.Conf.GetString("storePath"))
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening store: %v", err), err)
	}
	defer func() { _ = store.Close() }()

	// set up repos & services
	stuRepo, err := kvrepos.NewStudentRepository(store, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading students: %v", err), err)
	}
	occRepo, err := kvrepos.NewOccurrenceRepository(store, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading occurrences: %v", err), err)
	}

	var mailSvc core.EmailService
	if core.Conf.GetBool("debug") {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	// start CLI
	cli := commandLine{
		out:    os.Stdout,
		stuSvc: student.NewService(stuRepo),
		occSvc: occurrence.NewService(occRepo, stuRepo, mailSvc),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %v", err), err)
		}
		os.Exit(1)
	}
}
